package node

import (
	"garrison/internal/agreement"
	garrisonpb "garrison/internal/gen/api"
)

// orderToProto converts an agreement order to its protobuf enum.
func orderToProto(o agreement.Order) garrisonpb.Order {
	if o == agreement.Attack {
		return garrisonpb.Order_ORDER_ATTACK
	}
	return garrisonpb.Order_ORDER_RETREAT
}

// orderFromProto converts a protobuf enum to an agreement order. Unknown
// values collapse to the fail-safe default.
func orderFromProto(o garrisonpb.Order) agreement.Order {
	if o == garrisonpb.Order_ORDER_ATTACK {
		return agreement.Attack
	}
	return agreement.Retreat
}

// pathToProto converts a relay path to its wire form.
func pathToProto(p agreement.Path) []int64 {
	out := make([]int64, len(p))
	for i, id := range p {
		out[i] = int64(id)
	}
	return out
}

// pathFromProto converts a wire path back to a relay path.
func pathFromProto(ids []int64) agreement.Path {
	out := make(agreement.Path, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
