// Package sample holds a small logistics model used by the introspection
// examples and the adapter tests. It deliberately covers the shapes the
// loader cares about: embedded-struct chains, struct tags, generics, enums,
// pointer and map fields, and an interface diamond.
package sample

import (
	"time"
)

// Entity carries the identity columns shared by every persisted model.
type Entity struct {
	ID        int64     `json:"id"         db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Dimensions captures the physical size of a parcel.
type Dimensions struct {
	WidthMM  int `json:"width_mm"`
	HeightMM int `json:"height_mm"`
	DepthMM  int `json:"depth_mm"`
}

// Person represents a customer or an employee.
type Person struct {
	Entity

	Name     string         `json:"name" db:"name" validate:"required"`
	Nickname *string        `json:"nickname,omitempty"`
	Scores   map[string]int `json:"scores,omitempty"`
	Tags     []string       `json:"tags,omitempty"`

	internalNote string
}

// Shipment is a parcel in transit. Entity forms its identity; Dimensions is
// a second embedding, so its fields arrive as promoted fields.
type Shipment struct {
	Entity
	Dimensions

	Carrier   string  `json:"carrier" validate:"required"`
	Recipient Person  `json:"recipient"`
	Priority  bool    `json:"priority"`
	WeightKG  float64 `json:"weight_kg"`
}

// TreeNode is a self-referential shape for routing hierarchies.
type TreeNode struct {
	Label    string     `json:"label"`
	Children []TreeNode `json:"children,omitempty"`
}

// Status is the lifecycle state of a shipment.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
)

// Temperature is a plain named value with no constant set.
type Temperature float64

// Container is a generic batch of items.
type Container[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// Pair couples a key with a value.
type Pair[K comparable, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// Category nests subcategories around a payload of one shape.
type Category[T any] struct {
	Payload  T             `json:"payload"`
	Children []Category[T] `json:"children,omitempty"`
}

// Inventory aggregates closed generic shapes.
type Inventory struct {
	Boxes  Container[int]      `json:"boxes"`
	Labels Pair[string, int64] `json:"labels"`
	Status Status              `json:"status"`
}

// Feed streams shipment updates. Channels and funcs have no introspectable
// shape, so its fields show up as skipped in diagnostics.
type Feed struct {
	Updates chan string `json:"-"`
	Notify  func(id int64)
}

// Identified is the root of the contract diamond.
type Identified interface {
	ID() int64
}

// Readable allows reading from an identified resource.
type Readable interface {
	Identified

	Read(limit int) string
}

// Writable allows writing to an identified resource.
type Writable interface {
	Identified

	Write(data string) error
}

// Store joins Readable and Writable, closing the diamond over Identified.
type Store interface {
	Readable
	Writable

	Capacity() int
}
