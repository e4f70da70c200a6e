package model

type ConsultAskRequest struct {
	Topic    string `json:"topic" validate:"omitempty,oneof=general career skills pricing safety"`
	Question string `json:"question" validate:"required,max=500"`
}

type ConsultAnswerResponse struct {
	Topic    string   `json:"topic,omitempty"`
	Question string   `json:"question"`
	Message  string   `json:"message"`
	FollowUp []string `json:"followUp"`
	Matched  bool     `json:"matched"`
}

type ConsultTopicResponse struct {
	Topic     string   `json:"topic"`
	Questions []string `json:"questions"`
}
