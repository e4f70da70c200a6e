package entity

type Subscription string

const (
	SubscriptionNone  Subscription = "none"
	SubscriptionBasic Subscription = "basic"
	SubscriptionPro   Subscription = "pro"
)

type User struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Email              string       `json:"email"`
	Phone              string       `json:"phone"`
	Avatar             string       `json:"avatar"`
	Address            string       `json:"address"`
	WalletBalance      int64        `json:"walletBalance"`
	Subscription       Subscription `json:"subscription"`
	JobsPosted         []string     `json:"jobsPosted"`
	FavoriteKerjaMates []string     `json:"favoriteKerjaMates"`
}

// Clone returns a copy that shares no slices with u.
func (u User) Clone() User {
	u.JobsPosted = append([]string(nil), u.JobsPosted...)
	u.FavoriteKerjaMates = append([]string(nil), u.FavoriteKerjaMates...)
	return u
}

type PersonaKey string

const (
	PersonaDailyWork  PersonaKey = "dailyWork"
	PersonaFormalJobs PersonaKey = "formalJobs"
	PersonaTraining   PersonaKey = "training"
	PersonaNeedHelp   PersonaKey = "needHelp"
)

// UserPersona decides which navigation sections a session sees.
type UserPersona struct {
	DailyWork  bool `json:"dailyWork"`
	FormalJobs bool `json:"formalJobs"`
	Training   bool `json:"training"`
	NeedHelp   bool `json:"needHelp"`
}
