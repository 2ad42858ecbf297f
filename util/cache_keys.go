// api/util/cache_keys.go
package util

import (
	"fmt"
	"strings"

	food_errors "github.com/EivorRrz/restro/api/errors"
	"github.com/EivorRrz/restro/api/model"
)

// EntityKind names a cacheable record type.
type EntityKind string

const (
	KindUser       EntityKind = "user"
	KindRestaurant EntityKind = "restaurant"
	KindCategory   EntityKind = "category"
	KindFood       EntityKind = "food"
)

var pluralKinds = map[EntityKind]string{
	KindUser:       "users",
	KindRestaurant: "restaurants",
	KindCategory:   "categories",
	KindFood:       "foods",
}

// Plural is the collection prefix used in list keys, e.g. "foods".
func (k EntityKind) Plural() string {
	return pluralKinds[k]
}

// ParseEntityKind accepts either the singular or the plural name.
func ParseEntityKind(s string) (EntityKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, plural := range pluralKinds {
		if s == string(kind) || s == plural {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", food_errors.ErrUnknownCacheKind, s)
}

// TTLClass selects how long a cached read lives.
type TTLClass int

const (
	TTLEntity TTLClass = iota
	TTLCollection
	TTLFiltered
	TTLSearch
)

// CacheKey is a derived cache key together with the kind and TTL class of the
// read it stores.
type CacheKey struct {
	Kind  EntityKind
	Class TTLClass
	Name  string
}

func (k CacheKey) String() string {
	return k.Name
}

func entityKey(kind EntityKind, id string) CacheKey {
	return CacheKey{Kind: kind, Class: TTLEntity, Name: fmt.Sprintf("%s:%s", kind, id)}
}

func collectionKey(kind EntityKind) CacheKey {
	return CacheKey{Kind: kind, Class: TTLCollection, Name: kind.Plural() + ":all"}
}

func searchKey(kind EntityKind, query string) CacheKey {
	return CacheKey{Kind: kind, Class: TTLSearch, Name: fmt.Sprintf("search:%s:%s", kind.Plural(), NormalizeQuery(query))}
}

// NormalizeQuery folds a free-text query so equivalent searches share a key.
// Searches match case-insensitively, so the fold loses nothing. Keys therefore
// differ from the raw-query form "search:foods:<query as typed>": tooling that
// rebuilds search keys from user input must apply the same fold.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}

func UserKey(id string) CacheKey       { return entityKey(KindUser, id) }
func AllUsersKey() CacheKey            { return collectionKey(KindUser) }
func RestaurantKey(id string) CacheKey { return entityKey(KindRestaurant, id) }
func AllRestaurantsKey() CacheKey      { return collectionKey(KindRestaurant) }
func CategoryKey(id string) CacheKey   { return entityKey(KindCategory, id) }
func AllCategoriesKey() CacheKey       { return collectionKey(KindCategory) }
func FoodKey(id string) CacheKey       { return entityKey(KindFood, id) }
func AllFoodsKey() CacheKey            { return collectionKey(KindFood) }

func FoodsByCategoryKey(categoryID string) CacheKey {
	return CacheKey{Kind: KindFood, Class: TTLFiltered, Name: "foods:category:" + categoryID}
}

func FoodsByRestaurantKey(restaurantID string) CacheKey {
	return CacheKey{Kind: KindFood, Class: TTLFiltered, Name: "foods:restaurant:" + restaurantID}
}

func FoodSearchKey(query string) CacheKey       { return searchKey(KindFood, query) }
func RestaurantSearchKey(query string) CacheKey { return searchKey(KindRestaurant, query) }

// SearchIndex is the key of the set tracking every cached search of kind.
func SearchIndex(kind EntityKind) string {
	return "index:search:" + kind.Plural()
}

func BlacklistKey(rawToken string) string {
	return "blacklist:" + rawToken
}

func RateLimitKey(identity string) string {
	return "rate_limit:" + identity
}

// kindPatterns lists the glob patterns covering every cached read of kind.
func kindPatterns(kind EntityKind) []string {
	return []string{
		string(kind) + ":*",
		kind.Plural() + ":*",
		"search:" + kind.Plural() + ":*",
	}
}

func UserInvalidationKeys(id string) []string {
	return []string{UserKey(id).Name, AllUsersKey().Name}
}

func RestaurantInvalidationKeys(id string) []string {
	return []string{RestaurantKey(id).Name, AllRestaurantsKey().Name}
}

func CategoryInvalidationKeys(id string) []string {
	return []string{CategoryKey(id).Name, AllCategoriesKey().Name}
}

// FoodInvalidationKeys returns every key a food mutation can make stale. Pass
// the record before and after the change; nil snapshots are skipped, so a
// create passes only the new record and a delete only the old one.
func FoodInvalidationKeys(snapshots ...*model.Food) []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0, 6)
	add := func(k CacheKey) {
		if _, ok := seen[k.Name]; ok {
			return
		}
		seen[k.Name] = struct{}{}
		keys = append(keys, k.Name)
	}

	add(AllFoodsKey())
	for _, f := range snapshots {
		if f == nil {
			continue
		}
		if f.ID != "" {
			add(FoodKey(f.ID))
		}
		if f.Category != "" {
			add(FoodsByCategoryKey(f.Category))
		}
		if f.Restaurant != "" {
			add(FoodsByRestaurantKey(f.Restaurant))
		}
	}
	return keys
}
