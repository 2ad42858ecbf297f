package dao

import (
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"

	"github.com/EivorRrz/restro/api/model"
)

func TestMapNodeToUser(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	node := neo4j.Node{Props: map[string]any{
		"id":           "u1",
		"userName":     "ana",
		"email":        "ana@example.com",
		"passwordHash": "hash",
		"answerHash":   "answer",
		"address":      []any{"1 Main St", 42, "2 High St"},
		"usertype":     model.UserTypeAdmin,
		"createdAt":    "2024-03-01T10:00:00Z",
	}}

	user := mapNodeToUser(node)

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Equal(t, []string{"1 Main St", "2 High St"}, user.Address)
	assert.True(t, user.IsAdmin())
	assert.True(t, created.Equal(user.CreatedAt))
	assert.True(t, user.UpdatedAt.IsZero())
}

func TestMapNodeToFood(t *testing.T) {
	node := neo4j.Node{Props: map[string]any{
		"id":          "f1",
		"title":       "Pizza",
		"price":       int64(12),
		"isAvailable": true,
		"restaurant":  "r1",
		"category":    "c1",
		"rating":      4.5,
		"ratingCount": int64(7),
		"updatedAt":   "not-a-time",
	}}

	food := mapNodeToFood(node)

	assert.Equal(t, 12.0, food.Price)
	assert.Equal(t, 4.5, food.Rating)
	assert.Equal(t, 7, food.RatingCount)
	assert.True(t, food.IsAvailable)
	assert.True(t, food.UpdatedAt.IsZero())
}

func TestMapNodeToOrder(t *testing.T) {
	node := neo4j.Node{Props: map[string]any{
		"id":          "o1",
		"buyer":       "u1",
		"status":      "CONFIRMED",
		"totalAmount": 22.25,
		"foods":       `[{"food":"f1","quantity":2,"price":10.1}]`,
		"payment":     `{"method":"cash","status":"pending"}`,
	}}

	order := mapNodeToOrder(node)

	assert.Equal(t, model.OrderConfirmed, order.Status)
	assert.Equal(t, []model.OrderItem{{Food: "f1", Quantity: 2, Price: 10.1}}, order.Foods)
	assert.Equal(t, "cash", order.Payment.Method)

	t.Run("CorruptItems", func(t *testing.T) {
		order := mapNodeToOrder(neo4j.Node{Props: map[string]any{"id": "o2", "foods": "{"}})
		assert.NotNil(t, order.Foods)
		assert.Empty(t, order.Foods)
	})
}

func TestMapNodeToRestaurant(t *testing.T) {
	node := neo4j.Node{Props: map[string]any{
		"id":     "r1",
		"title":  "Luigi's",
		"foods":  []any{"f1", "f2"},
		"isOpen": true,
		"coords": `{"latitude":1.5,"longitude":2.5}`,
	}}

	r := mapNodeToRestaurant(node)

	assert.Equal(t, []string{"f1", "f2"}, r.Foods)
	assert.True(t, r.IsOpen)
	assert.Equal(t, 1.5, r.Coords.Latitude)

	empty := mapNodeToRestaurant(neo4j.Node{Props: map[string]any{}})
	assert.NotNil(t, empty.Foods)
}

func TestPropHelpers(t *testing.T) {
	props := map[string]any{"n": 3.9, "i": int64(4), "s": 5}

	assert.Equal(t, 3, propInt(props, "n"))
	assert.Equal(t, 4.0, propFloat(props, "i"))
	assert.Equal(t, "", propString(props, "s"))
	assert.False(t, propBool(props, "missing"))
	assert.Equal(t, []string{}, propStrings(props, "missing"))
	assert.Equal(t, []string{}, nonNilStrings(nil))
}
