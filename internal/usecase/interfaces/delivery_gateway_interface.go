package interfaces

import (
	"context"

	"wiz_adquote/internal/domain/entities"
)

// IDeliveryGateway abstracts the external multi-channel delivery service.
//
// Dispatch is invoked once per Send and returns one outcome per requested
// channel; channels that were not requested have no map entry. A non-nil
// error means the service itself was unreachable and is reported as a single
// generic failure, not per channel.
type IDeliveryGateway interface {
	Dispatch(ctx context.Context, req entities.DeliveryRequest) (map[entities.Channel]entities.DeliveryOutcome, error)
}
