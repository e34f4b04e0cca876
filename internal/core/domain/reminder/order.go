package reminder

import "errors"

var ErrParseOrderBy = errors.New("invalid order_by")

type OrderBy int

const (
	OrderByIDAsc OrderBy = iota
	OrderByIDDesc
	OrderByAtAsc
	OrderByAtDesc
)

func ParseOrderBy(value string) (OrderBy, error) {
	switch value {
	case "id_asc":
		return OrderByIDAsc, nil
	case "id_desc":
		return OrderByIDDesc, nil
	case "fecha_asc":
		return OrderByAtAsc, nil
	case "fecha_desc":
		return OrderByAtDesc, nil
	default:
		return OrderByIDAsc, ErrParseOrderBy
	}
}
