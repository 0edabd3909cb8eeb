package http

import (
	"net/http"

	"umbrella-fleet-backend/internal/service"

	"github.com/gorilla/mux"
)

// Pinger is the connectivity probe behind /api/test.
type Pinger interface {
	Ping() error
}

// NewRouter builds the full REST surface under /api.
func NewRouter(
	store Pinger,
	stationSvc service.StationService,
	umbrellaSvc service.UmbrellaService,
	accountSvc service.AccountService,
	paymentSvc service.PaymentMethodService,
	maintainerSvc service.MaintainerService,
	maintenanceSvc service.MaintenanceHistoryService,
	rentalSvc service.RentalHistoryService,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID, CORS, RequestLogger)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(); err != nil {
			writeRepoError(w, err, "Database")
			return
		}
		writeMessage(w, http.StatusOK, "Database connection is complete.")
	}).Methods(http.MethodGet)

	NewStationHandler(stationSvc).Register(api)
	NewUmbrellaHandler(umbrellaSvc).Register(api)
	NewAccountHandler(accountSvc).Register(api)
	NewPaymentMethodHandler(paymentSvc).Register(api)
	NewMaintainerHandler(maintainerSvc).Register(api)
	NewMaintenanceHistoryHandler(maintenanceSvc).Register(api)
	NewRentalHistoryHandler(rentalSvc).Register(api)

	return router
}
