package apierrors

const (
	MsgUnauthorized           = "unauthorized"
	MsgInvalidCredentials     = "invalidCredentials"
	MsgInvalidRegisterPayload = "invalidRegisterPayload"
	MsgEmailTaken             = "emailTaken"
	MsgFailRegister           = "failRegister"
	MsgFailLogin              = "failLogin"

	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailGetTask        = "failGetTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailToggleTask     = "failToggleTask"

	MsgTaskDeleted = "taskDeleted"
	MsgLoggedOut   = "loggedOut"
)
