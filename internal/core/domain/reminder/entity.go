package reminder

import (
	"errors"
	"strconv"
)

var ErrParseEntityKind = errors.New("invalid entity kind")

// EntityKind names the kind of external business record a reminder points
// at. The reference is deliberately loose: the pointed-at row lives in a
// table this subsystem does not own, so no foreign key is enforced.
type EntityKind struct {
	v string
}

func (k EntityKind) String() string {
	return k.v
}

func ParseEntityKind(value string) (EntityKind, error) {
	switch value {
	case "pedido":
		return EntityKindOrder, nil
	case "cliente":
		return EntityKindClient, nil
	default:
		return EntityKindUnknown, ErrParseEntityKind
	}
}

var (
	EntityKindUnknown = EntityKind{}
	EntityKindOrder   = EntityKind{v: "pedido"}
	EntityKindClient  = EntityKind{v: "cliente"}
)

// EntityRef is an opaque pointer to an external entity. Together with the
// reminder Kind it forms the generator's natural dedup key.
type EntityRef struct {
	Kind EntityKind
	ID   string
}

func NewOrderRef(orderID int64) EntityRef {
	return EntityRef{Kind: EntityKindOrder, ID: strconv.FormatInt(orderID, 10)}
}

func NewClientRef(clientID int64) EntityRef {
	return EntityRef{Kind: EntityKindClient, ID: strconv.FormatInt(clientID, 10)}
}
