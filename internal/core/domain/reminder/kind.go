package reminder

import "errors"

var ErrParseKind = errors.New("invalid reminder kind")

// Kind categorizes what a reminder is about. The ENTREGA_PEDIDO and
// PAGO_PENDIENTE kinds are produced automatically by the generator scans,
// the rest only by direct user request.
type Kind struct {
	v string
}

func (k Kind) String() string {
	return k.v
}

func ParseKind(value string) (Kind, error) {
	switch value {
	case "ENTREGA_PEDIDO":
		return KindOrderDue, nil
	case "SEGUIMIENTO_CLIENTE":
		return KindClientFollowUp, nil
	case "PAGO_PENDIENTE":
		return KindPaymentDue, nil
	case "REUNION":
		return KindMeeting, nil
	case "LLAMADA":
		return KindCall, nil
	case "OTRO":
		return KindOther, nil
	default:
		return KindUnknown, ErrParseKind
	}
}

var (
	KindUnknown        = Kind{}
	KindOrderDue       = Kind{v: "ENTREGA_PEDIDO"}
	KindClientFollowUp = Kind{v: "SEGUIMIENTO_CLIENTE"}
	KindPaymentDue     = Kind{v: "PAGO_PENDIENTE"}
	KindMeeting        = Kind{v: "REUNION"}
	KindCall           = Kind{v: "LLAMADA"}
	KindOther          = Kind{v: "OTRO"}
)
