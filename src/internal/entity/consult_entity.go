package entity

type ChatTopic string

const (
	ChatTopicGeneral ChatTopic = "general"
	ChatTopicCareer  ChatTopic = "career"
	ChatTopicSkills  ChatTopic = "skills"
	ChatTopicPricing ChatTopic = "pricing"
	ChatTopicSafety  ChatTopic = "safety"
)

type ChatResponse struct {
	Message  string   `json:"message"`
	FollowUp []string `json:"followUp,omitempty"`
}
