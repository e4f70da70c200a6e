package entity

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type Review struct {
	ID       string  `json:"id"`
	UserName string  `json:"userName"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
	Date     string  `json:"date"`
}

// KerjaMate is an informal worker listed in the marketplace. Nothing in the
// service writes to a KerjaMate after the catalog is loaded.
type KerjaMate struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Avatar        string   `json:"avatar"`
	Verified      bool     `json:"verified"`
	Rating        float64  `json:"rating"`
	Skills        []string `json:"skills"`
	CompletedJobs int      `json:"completedJobs"`
	Location      Location `json:"location"`
	Distance      float64  `json:"distance"`
	HourlyRate    int64    `json:"hourlyRate"`
	About         string   `json:"about"`
	Availability  bool     `json:"availability"`
	Reviews       []Review `json:"reviews"`
	Badges        []string `json:"badges"`
}

func (k KerjaMate) Clone() KerjaMate {
	k.Skills = append([]string(nil), k.Skills...)
	k.Reviews = append([]Review(nil), k.Reviews...)
	k.Badges = append([]string(nil), k.Badges...)
	return k
}
