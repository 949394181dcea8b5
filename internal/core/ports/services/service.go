package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	Authorizer   AuthorizerSvc
	User         UserSvcFacade
	Company      CompanySvcFacade
	Project      ProjectSvcFacade
	Task         TaskSvcFacade
	Cost         CostSvcFacade
	ChangeOrder  ChangeOrderSvcFacade
	DailyLog     DailyLogSvcFacade
	Document     DocumentSvcFacade
	Contact      ContactSvcFacade
	Notification NotificationSvcFacade
}
