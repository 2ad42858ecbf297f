// api/dao/dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/db"
	food_errors "github.com/EivorRrz/restro/api/errors"
	logger "github.com/EivorRrz/restro/api/logging"
	helper_util "github.com/EivorRrz/restro/api/util/helper"
)

var schemaStatements = []string{
	`CREATE CONSTRAINT unique_user_id IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE`,
	`CREATE CONSTRAINT unique_user_email IF NOT EXISTS FOR (u:User) REQUIRE u.email IS UNIQUE`,
	`CREATE CONSTRAINT unique_restaurant_id IF NOT EXISTS FOR (r:Restaurant) REQUIRE r.id IS UNIQUE`,
	`CREATE CONSTRAINT unique_category_id IF NOT EXISTS FOR (c:Category) REQUIRE c.id IS UNIQUE`,
	`CREATE CONSTRAINT unique_food_id IF NOT EXISTS FOR (f:Food) REQUIRE f.id IS UNIQUE`,
	`CREATE CONSTRAINT unique_order_id IF NOT EXISTS FOR (o:Order) REQUIRE o.id IS UNIQUE`,
	`CREATE INDEX food_category IF NOT EXISTS FOR (f:Food) ON (f.category)`,
	`CREATE INDEX food_restaurant IF NOT EXISTS FOR (f:Food) ON (f.restaurant)`,
	`CREATE INDEX order_buyer IF NOT EXISTS FOR (o:Order) ON (o.buyer)`,
}

// EnsureSchema creates the unique-id constraints and lookup indexes.
func EnsureSchema(ctx context.Context, driver neo4j.DriverWithContext) error {
	logger.Info("Ensuring Neo4j constraints and indexes")
	for _, stmt := range schemaStatements {
		_, err := db.ExecuteWrite(ctx, driver, func(tx neo4j.ManagedTransaction) (any, error) {
			_, err := tx.Run(ctx, stmt, nil)
			return nil, err
		})
		if err != nil {
			logger.Error("Failed to apply schema statement", zap.Error(err), zap.String("statement", stmt))
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	logger.Info("Successfully ensured Neo4j schema")
	return nil
}

func dbError(err error) error {
	return fmt.Errorf("%w: %v", food_errors.ErrDatabaseOperation, err)
}

func run(ctx context.Context, driver neo4j.DriverWithContext, mode neo4j.AccessMode, work neo4j.ManagedTransactionWork) (any, error) {
	if mode == neo4j.AccessModeWrite {
		return db.ExecuteWrite(ctx, driver, work)
	}
	return db.ExecuteRead(ctx, driver, work)
}

// runSingle returns the node in the first column of the first record, or nil
// when the query matched nothing.
func runSingle(ctx context.Context, driver neo4j.DriverWithContext, mode neo4j.AccessMode, query string, params map[string]any) (*neo4j.Node, error) {
	out, err := run(ctx, driver, mode, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		if !result.Next(ctx) {
			return nil, result.Err()
		}
		node, ok := result.Record().Values[0].(neo4j.Node)
		if !ok {
			return nil, fmt.Errorf("unexpected record value %T", result.Record().Values[0])
		}
		return &node, nil
	})
	if err != nil {
		return nil, dbError(err)
	}
	node, _ := out.(*neo4j.Node)
	return node, nil
}

// runList returns the nodes in the first column of every record. The slice
// is never nil.
func runList(ctx context.Context, driver neo4j.DriverWithContext, query string, params map[string]any) ([]neo4j.Node, error) {
	out, err := db.ExecuteRead(ctx, driver, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		nodes := []neo4j.Node{}
		for result.Next(ctx) {
			node, ok := result.Record().Values[0].(neo4j.Node)
			if !ok {
				return nil, fmt.Errorf("unexpected record value %T", result.Record().Values[0])
			}
			nodes = append(nodes, node)
		}
		return nodes, result.Err()
	})
	if err != nil {
		return nil, dbError(err)
	}
	return out.([]neo4j.Node), nil
}

// runDelete returns the number of nodes the query deleted.
func runDelete(ctx context.Context, driver neo4j.DriverWithContext, query string, params map[string]any) (int, error) {
	out, err := db.ExecuteWrite(ctx, driver, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		summary, err := result.Consume(ctx)
		if err != nil {
			return nil, err
		}
		return summary.Counters().NodesDeleted(), nil
	})
	if err != nil {
		return 0, dbError(err)
	}
	return out.(int), nil
}

func now() string {
	return helper_util.FormatTime(time.Now())
}

func propString(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

func propBool(props map[string]any, key string) bool {
	b, _ := props[key].(bool)
	return b
}

func propInt(props map[string]any, key string) int {
	switch v := props[key].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func propFloat(props map[string]any, key string) float64 {
	switch v := props[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}

func propStrings(props map[string]any, key string) []string {
	out := []string{}
	list, _ := props[key].([]any)
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func propTime(props map[string]any, key string) time.Time {
	t, err := helper_util.ParseNullableTime(props[key])
	if err != nil || t == nil {
		return time.Time{}
	}
	return *t
}
