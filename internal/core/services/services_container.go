package services

import (
	portsrepo "github.com/SscSPs/fieldflow_pm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(store portsrepo.Storage, sessions portssvc.SessionRegistry) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The gate and notifications are shared by every domain service
	container.Authorizer = NewAuthorizationService(DefaultPolicy())
	container.Notification = NewNotificationService(store, container.Authorizer)

	container.Auth = NewAuthService(store, sessions)
	container.User = NewUserService(store, container.Authorizer)
	container.Company = NewCompanyService(store, container.Authorizer)

	container.Project = NewProjectService(store, store, container.Authorizer)
	container.Task = NewTaskService(store, store, store, container.Authorizer)
	container.Cost = NewCostService(store, store, store, container.Notification, container.Authorizer)
	container.ChangeOrder = NewChangeOrderService(store, store, container.Notification, container.Authorizer)

	container.DailyLog = NewDailyLogService(store, store, container.Authorizer)
	container.Document = NewDocumentService(store, store, container.Authorizer)
	container.Contact = NewContactService(store, container.Authorizer)

	return container
}
