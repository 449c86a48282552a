package canon

import "fmt"

// Kind is an abstract tile identity in the range 0-33.
type Kind int

// Instance is a physical tile identity in the range 0-135.
type Instance int

const (
	// KindCount is the number of distinct tile kinds.
	KindCount = 34
	// InstanceCount is the number of physical tiles in a set.
	InstanceCount = 136
	// Seats is the number of players at the table.
	Seats = 4
	// DealtTiles is the size of a starting hand.
	DealtTiles = 13
)

const (
	KindMan1  Kind = 0
	KindPin1  Kind = 9
	KindSou1  Kind = 18
	KindEast  Kind = 27
	KindSouth Kind = 28
	KindWest  Kind = 29
	KindNorth Kind = 30
	KindWhite Kind = 31
	KindGreen Kind = 32
	KindRed   Kind = 33
)

// NewInstance returns the instance for the given kind and copy index.
func NewInstance(kind Kind, copyIndex int) Instance {
	return Instance(int(kind)*4 + copyIndex)
}

// Kind returns the abstract kind of the instance.
func (i Instance) Kind() Kind {
	return Kind(int(i) / 4)
}

// Copy returns the copy index (0-3) of the instance.
func (i Instance) Copy() int {
	return int(i) % 4
}

// IsRed reports whether the instance is the red five of its suit.
func (i Instance) IsRed() bool {
	return i.Copy() == 0 && i.Kind().IsFive()
}

// Valid reports whether the instance lies inside the tile set.
func (i Instance) Valid() bool {
	return i >= 0 && i < InstanceCount
}

// Valid reports whether the kind lies inside the tile set.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// IsHonor reports whether the kind is a wind or dragon.
func (k Kind) IsHonor() bool {
	return k >= KindEast && k <= KindRed
}

// IsFive reports whether the kind is the five of a numeral suit.
func (k Kind) IsFive() bool {
	return !k.IsHonor() && k%9 == 4
}

// Suit returns 0, 1, 2 for the numeral suits and 3 for honors.
func (k Kind) Suit() int {
	return int(k) / 9
}

// Number returns the 1-based numeral of a suited kind, or the 1-based position of an honor.
func (k Kind) Number() int {
	return int(k)%9 + 1
}

var honorNames = [...]string{"E", "S", "W", "N", "Wh", "Gr", "Rd"}

// String renders kinds as "1m", "5p", "9s" or an honor abbreviation.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	if k.IsHonor() {
		return honorNames[k-KindEast]
	}
	return fmt.Sprintf("%d%c", k.Number(), "mps"[k.Suit()])
}

// String renders the instance as its kind plus copy index, e.g. "5m#0".
func (i Instance) String() string {
	return fmt.Sprintf("%s#%d", i.Kind(), i.Copy())
}
