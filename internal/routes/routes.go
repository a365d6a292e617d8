package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-console/internal/controllers"
	"maintenance-console/internal/repositories"
	"maintenance-console/internal/services"
	"maintenance-console/pkg/apiclient"
	"maintenance-console/pkg/config"
	"maintenance-console/pkg/debounce"
	"maintenance-console/pkg/eventbus"
)

type Loggers struct {
	Main    *zap.Logger
	Backend *zap.Logger
}

// InitRouter builds every repository, service and controller of the console
// and mounts the page routes on e.
func InitRouter(
	e *echo.Echo,
	client *apiclient.Client,
	cache repositories.CacheRepositoryInterface,
	bus *eventbus.Bus,
	loggers *Loggers,
	cfg *config.Config,
) {
	loggers.Main.Info("InitRouter: building routes")

	pageSize := cfg.Listing.PageSize
	debouncer := debounce.New(cfg.Listing.Debounce)

	// --- 1. REPOSITORIES ---
	equipmentRepo := repositories.NewEquipmentRepository(client, loggers.Backend)
	technicianRepo := repositories.NewTechnicianRepository(client, loggers.Backend)
	itemRepo := repositories.NewItemRepository(client, loggers.Backend)
	orderRepo := repositories.NewOrderRepository(client, loggers.Backend)
	orderLineRepo := repositories.NewOrderLineRepository(client, pageSize, loggers.Backend)

	// --- 2. SERVICES ---
	equipmentService := services.NewEquipmentService(equipmentRepo, bus, loggers.Main)
	technicianService := services.NewTechnicianService(technicianRepo, bus, loggers.Main)
	itemService := services.NewItemService(itemRepo, bus, loggers.Main)
	orderService := services.NewOrderService(orderRepo, bus, loggers.Main)
	orderLineService := services.NewOrderLineService(orderLineRepo, bus, loggers.Main)
	dashboardService := services.NewDashboardService(technicianRepo, equipmentRepo, itemRepo, pageSize, loggers.Main)
	lookupService := services.NewLookupService(technicianRepo, equipmentRepo, itemRepo, debouncer, pageSize, loggers.Main)
	exportService := services.NewExportService(equipmentRepo, technicianRepo, itemRepo, orderRepo, pageSize, cfg.Listing.ExportLimit, loggers.Main)
	flashService := services.NewFlashService(cache, cfg.FlashTTL, loggers.Main)

	// --- 3. CONTROLLERS ---
	base := controllers.NewBaseController(flashService, pageSize, loggers.Main)
	exportCtrl := controllers.NewExportController(base, exportService)

	// --- 4. ROUTERS ---
	runDashboardRouter(e, controllers.NewDashboardController(base, dashboardService, orderService))
	runEquipmentRouter(e, controllers.NewEquipmentController(base, equipmentService), exportCtrl)
	runTechnicianRouter(e, controllers.NewTechnicianController(base, technicianService), exportCtrl)
	runItemRouter(e, controllers.NewItemController(base, itemService), exportCtrl)
	runOrderRouter(e, controllers.NewOrderController(base, orderService, orderLineService, lookupService), exportCtrl)
	runLookupRouter(e, controllers.NewLookupController(base, lookupService))

	loggers.Main.Info("InitRouter: routes ready")
}
