package requests

// SkillRequest is the envelope the voice platform posts for every invocation.
type SkillRequest struct {
	Version string   `json:"version" validate:"required"`
	Session *Session `json:"session,omitempty"`
	Context Context  `json:"context"`
	Request Request  `json:"request"`
}

type Session struct {
	New         bool                   `json:"new"`
	SessionID   string                 `json:"sessionId"`
	Application Application            `json:"application"`
	Attributes  map[string]interface{} `json:"attributes,omitempty"`
	User        User                   `json:"user"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken,omitempty"`
}

type Context struct {
	System System `json:"System"`
}

type System struct {
	Application    Application `json:"application"`
	User           User        `json:"user"`
	Device         Device      `json:"device"`
	APIEndpoint    string      `json:"apiEndpoint"`
	APIAccessToken string      `json:"apiAccessToken"`
}

type Device struct {
	DeviceID string `json:"deviceId"`
}

type Request struct {
	Type        string        `json:"type" validate:"required"`
	RequestID   string        `json:"requestId" validate:"required"`
	Timestamp   string        `json:"timestamp"`
	Locale      string        `json:"locale,omitempty"`
	DialogState string        `json:"dialogState,omitempty"`
	Reason      string        `json:"reason,omitempty"`
	Intent      *Intent       `json:"intent,omitempty"`
	Error       *RequestError `json:"error,omitempty"`
}

type Intent struct {
	Name               string           `json:"name"`
	ConfirmationStatus string           `json:"confirmationStatus,omitempty"`
	Slots              map[string]*Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name               string `json:"name"`
	Value              string `json:"value,omitempty"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

type RequestError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ApplicationID prefers the session copy and falls back to the context.
func (r *SkillRequest) ApplicationID() string {
	if r.Session != nil && r.Session.Application.ApplicationID != "" {
		return r.Session.Application.ApplicationID
	}
	return r.Context.System.Application.ApplicationID
}

func (r *SkillRequest) SessionID() string {
	if r.Session == nil {
		return ""
	}
	return r.Session.SessionID
}

func (r *SkillRequest) UserID() string {
	if r.Session != nil && r.Session.User.UserID != "" {
		return r.Session.User.UserID
	}
	return r.Context.System.User.UserID
}

func (r *SkillRequest) IntentName() string {
	if r.Request.Intent == nil {
		return ""
	}
	return r.Request.Intent.Name
}

// SlotValue returns the value of the named slot, or "" when it is unfilled.
func (r *SkillRequest) SlotValue(name string) string {
	if r.Request.Intent == nil {
		return ""
	}
	slot, ok := r.Request.Intent.Slots[name]
	if !ok || slot == nil {
		return ""
	}
	return slot.Value
}
