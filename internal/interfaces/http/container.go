package http

import (
	"gorm.io/gorm"

	assignmentuc "rentora/internal/application/assignment/usecases"
	authuc "rentora/internal/application/auth/usecases"
	bookinguc "rentora/internal/application/booking/usecases"
	"rentora/internal/application/coordinator"
	maintenanceuc "rentora/internal/application/maintenance/usecases"
	propertyuc "rentora/internal/application/property/usecases"
	reportuc "rentora/internal/application/report/usecases"
	staffuc "rentora/internal/application/staff/usecases"
	subscriptionuc "rentora/internal/application/subscription/usecases"
	"rentora/internal/domain/entitlement"
	"rentora/internal/infrastructure/auth"
	"rentora/internal/infrastructure/repository"
	assignmenthandlers "rentora/internal/interfaces/http/handlers/assignment"
	authhandlers "rentora/internal/interfaces/http/handlers/auth"
	bookinghandlers "rentora/internal/interfaces/http/handlers/booking"
	maintenancehandlers "rentora/internal/interfaces/http/handlers/maintenance"
	propertyhandlers "rentora/internal/interfaces/http/handlers/property"
	reporthandlers "rentora/internal/interfaces/http/handlers/report"
	staffhandlers "rentora/internal/interfaces/http/handlers/staff"
	subscriptionhandlers "rentora/internal/interfaces/http/handlers/subscription"
	"rentora/internal/interfaces/http/middleware"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/db"
	"rentora/internal/shared/logger"
)

// Container wires repositories, use cases and handlers for the HTTP API.
type Container struct {
	AuthHandler         *authhandlers.AuthHandler
	PropertyHandler     *propertyhandlers.PropertyHandler
	BookingHandler      *bookinghandlers.BookingHandler
	SubscriptionHandler *subscriptionhandlers.SubscriptionHandler
	AssignmentHandler   *assignmenthandlers.AssignmentHandler
	ReportHandler       *reporthandlers.ReportHandler
	MaintenanceHandler  *maintenancehandlers.MaintenanceHandler
	StaffHandler        *staffhandlers.StaffHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func NewContainer(database *gorm.DB, jwtService *auth.JWTService, log logger.Interface) (*Container, error) {
	guard, err := authorization.NewGuard()
	if err != nil {
		return nil, err
	}
	gate := entitlement.NewGate()
	txManager := db.NewTransactionManager(database)

	userRepo := repository.NewUserRepository(database, log)
	propertyRepo := repository.NewPropertyRepository(database, log)
	bookingRepo := repository.NewBookingRepository(database, log)
	subscriptionRepo := repository.NewSubscriptionRepository(database, log)
	assignmentRepo := repository.NewAssignmentRepository(database, log)
	reportRepo := repository.NewReportRepository(database, log)
	maintenanceRepo := repository.NewMaintenanceRepository(database, log)

	coord := coordinator.NewCoordinator(propertyRepo, userRepo, log)

	authHandler := authhandlers.NewAuthHandler(
		authuc.NewRegisterUseCase(userRepo, log),
		authuc.NewLoginUseCase(userRepo, jwtService, log),
		jwtService,
		log,
	)

	propertyHandler := propertyhandlers.NewPropertyHandler(
		propertyuc.NewCreatePropertyUseCase(guard, propertyRepo, log),
		propertyuc.NewGetPropertyUseCase(guard, propertyRepo),
		propertyuc.NewListPropertiesUseCase(guard, propertyRepo),
		propertyuc.NewApprovePropertyUseCase(guard, propertyRepo, log),
		propertyuc.NewRejectPropertyUseCase(guard, propertyRepo, log),
		propertyuc.NewDeletePropertyUseCase(guard, propertyRepo, bookingRepo, assignmentRepo, coord, txManager, log),
		propertyuc.NewTransferOwnershipUseCase(guard, propertyRepo, userRepo, log),
		log,
	)

	bookingHandler := bookinghandlers.NewBookingHandler(
		bookinguc.NewCreateBookingUseCase(guard, bookingRepo, propertyRepo, log),
		bookinguc.NewCompletePaymentUseCase(guard, bookingRepo, log),
		bookinguc.NewConfirmBookingUseCase(guard, bookingRepo, propertyRepo, log),
		bookinguc.NewCancelBookingUseCase(guard, bookingRepo, log),
		bookinguc.NewListBookingsUseCase(bookingRepo, propertyRepo),
		bookinguc.NewAddSupportTicketUseCase(guard, bookingRepo, log),
		bookinguc.NewResolveSupportTicketUseCase(guard, bookingRepo, log),
		log,
	)

	subscriptionHandler := subscriptionhandlers.NewSubscriptionHandler(
		subscriptionuc.NewCreateSubscriptionUseCase(guard, subscriptionRepo, propertyRepo, coord, txManager, log),
		subscriptionuc.NewCancelSubscriptionUseCase(guard, subscriptionRepo, coord, txManager, log),
		subscriptionuc.NewListPlansUseCase(),
		subscriptionuc.NewListSubscriptionsUseCase(subscriptionRepo),
		subscriptionuc.NewGetSubscriptionUseCase(subscriptionRepo),
		log,
	)

	assignmentHandler := assignmenthandlers.NewAssignmentHandler(
		assignmentuc.NewAssignStaffUseCase(guard, gate, assignmentRepo, propertyRepo, userRepo, coord, txManager, log),
		assignmentuc.NewAcceptAssignmentUseCase(guard, assignmentRepo, log),
		assignmentuc.NewStartAssignmentUseCase(guard, assignmentRepo, log),
		assignmentuc.NewCompleteAssignmentUseCase(guard, assignmentRepo, coord, txManager, log),
		assignmentuc.NewCancelAssignmentUseCase(guard, assignmentRepo, coord, txManager, log),
		assignmentuc.NewListAssignmentsUseCase(assignmentRepo),
		log,
	)

	reportHandler := reporthandlers.NewReportHandler(
		reportuc.NewSubmitReportUseCase(guard, reportRepo, assignmentRepo, coord, txManager, log),
		reportuc.NewReviewReportUseCase(guard, reportRepo, log),
		reportuc.NewForwardReportUseCase(guard, reportRepo, coord, log),
		reportuc.NewAcknowledgeReportUseCase(guard, reportRepo, log),
		reportuc.NewListReportsUseCase(reportRepo),
		log,
	)

	maintenanceHandler := maintenancehandlers.NewMaintenanceHandler(
		maintenanceuc.NewCreateTicketUseCase(guard, gate, maintenanceRepo, propertyRepo, coord, txManager, log),
		maintenanceuc.NewAssignTicketStaffUseCase(guard, maintenanceRepo, userRepo, log),
		maintenanceuc.NewCompleteTicketUseCase(guard, maintenanceRepo, propertyRepo, coord, txManager, log),
		maintenanceuc.NewCancelTicketUseCase(guard, maintenanceRepo, propertyRepo, log),
		maintenanceuc.NewAddFeedbackUseCase(guard, maintenanceRepo, propertyRepo, log),
		maintenanceuc.NewListTicketsUseCase(maintenanceRepo, propertyRepo),
		log,
	)

	staffHandler := staffhandlers.NewStaffHandler(
		staffuc.NewCreateStaffUseCase(guard, userRepo, log),
		staffuc.NewRemoveStaffUseCase(guard, userRepo, assignmentRepo, coord, txManager, log),
		log,
	)

	return &Container{
		AuthHandler:         authHandler,
		PropertyHandler:     propertyHandler,
		BookingHandler:      bookingHandler,
		SubscriptionHandler: subscriptionHandler,
		AssignmentHandler:   assignmentHandler,
		ReportHandler:       reportHandler,
		MaintenanceHandler:  maintenanceHandler,
		StaffHandler:        staffHandler,
		AuthMiddleware:      middleware.NewAuthMiddleware(jwtService, log),
	}, nil
}
