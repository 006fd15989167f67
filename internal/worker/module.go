package worker

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/starbuy/shop/internal/config"
	"github.com/starbuy/shop/internal/usecase"
)

// Module wires the notification dispatcher into the container.
var Module = fx.Options(
	fx.Provide(newDispatcher),
	fx.Provide(
		func(d *Dispatcher) usecase.OrderNotifier { return d },
		func(d *Dispatcher) usecase.DepositNotifier { return d },
	),
)

type dispatcherParams struct {
	fx.In

	Sender Sender
	Config *config.Config
	Logger *slog.Logger
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return NewDispatcher(p.Sender, p.Config.NotifyWorkers, p.Config.NotifyQueueSize, p.Config.NotifyRetries, p.Logger)
}
