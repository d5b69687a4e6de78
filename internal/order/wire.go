package order

import (
	"database/sql"

	"go.uber.org/zap"

	"rompefaja/internal/config"
	"rompefaja/internal/order/controller"
	"rompefaja/internal/order/feed"
	"rompefaja/internal/order/notify"
	"rompefaja/internal/order/repository"
	"rompefaja/internal/order/service"
	"rompefaja/internal/order/store"
)

// Module is one fully wired engine instance. Nothing here is process-global;
// the host owns the instance and its lifecycle.
type Module struct {
	Store      *store.Store
	Notifier   *notify.Manager
	Service    *service.OrdersService
	Listener   *feed.Listener
	Controller *controller.OrdersController
}

func NewModule(db *sql.DB, source feed.Source, cfg *config.Config, logger *zap.Logger) *Module {
	translator := repository.NewTranslator(logger)
	repo := repository.NewMySQLOrderRepository(db, translator, logger)

	st := store.New(logger)

	player := notify.NewCommandPlayer(cfg.Notify.SoundCommand, cfg.Notify.SoundFile)
	notifier := notify.NewManager(cfg.Notify.TTL, player, logger)

	ordersSvc := service.NewOrdersService(repo, st, notifier, logger)

	window := feed.NewWindow(cfg.Feed.DedupWindow)
	listener := feed.NewListener(source, window, translator, st, notifier, logger)

	ctrl := controller.NewOrdersController(ordersSvc, st, notifier, logger)

	return &Module{
		Store:      st,
		Notifier:   notifier,
		Service:    ordersSvc,
		Listener:   listener,
		Controller: ctrl,
	}
}
