package usecase

import (
	"context"
	"kerjabantu-service/src/internal/entity"
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/pkg/log"
	"kerjabantu-service/src/pkg/utils"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const fallbackAnswer = "I don't have an answer for that yet. Pick one of the topics below, or reach our support team at support@kerjabantu.com."

type ConsultUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Answers  map[entity.ChatTopic]map[string]entity.ChatResponse
	Topics   []entity.ChatTopic
}

func NewConsultUseCase(
	logger log.Log,
	validate *validator.Validate,
	answers map[entity.ChatTopic]map[string]entity.ChatResponse,
	topics []entity.ChatTopic,
) *ConsultUseCase {
	return &ConsultUseCase{
		Log:      logger,
		Validate: validate,
		Answers:  answers,
		Topics:   topics,
	}
}

// NormalizeQuestion lowercases, drops punctuation and collapses whitespace.
func NormalizeQuestion(q string) string {
	q = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		}
		return -1
	}, q)
	return strings.Join(strings.Fields(q), " ")
}

func (c *ConsultUseCase) ListTopics(_ context.Context) utils.Result {
	var result utils.Result

	topics := make([]model.ConsultTopicResponse, 0, len(c.Topics))
	for _, topic := range c.Topics {
		questions := make([]string, 0, len(c.Answers[topic]))
		for q := range c.Answers[topic] {
			questions = append(questions, q)
		}
		sort.Strings(questions)
		topics = append(topics, model.ConsultTopicResponse{Topic: string(topic), Questions: questions})
	}
	result.Data = topics
	return result
}

// Ask looks the question up within the topic, or across every topic when
// none is given. Unknown questions get a fallback that lists the topics.
func (c *ConsultUseCase) Ask(_ context.Context, request *model.ConsultAskRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}

	key := NormalizeQuestion(request.Question)
	topics := c.Topics
	if request.Topic != "" {
		topics = []entity.ChatTopic{entity.ChatTopic(request.Topic)}
	}
	for _, topic := range topics {
		if answer, ok := c.Answers[topic][key]; ok {
			result.Data = model.ConsultAnswerResponse{
				Topic:    string(topic),
				Question: request.Question,
				Message:  answer.Message,
				FollowUp: append([]string{}, answer.FollowUp...),
				Matched:  true,
			}
			return result
		}
	}

	c.Log.Info("consult-usecase", "no answer", "Ask", key)
	followUp := make([]string, 0, len(c.Topics))
	for _, topic := range c.Topics {
		followUp = append(followUp, string(topic))
	}
	result.Data = model.ConsultAnswerResponse{
		Topic:    request.Topic,
		Question: request.Question,
		Message:  fallbackAnswer,
		FollowUp: followUp,
	}
	return result
}
