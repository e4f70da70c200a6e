package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/internal/usecase"
)

func TestNormalizeQuestion(t *testing.T) {
	assert.Equal(t, "who are kerjabantus kerjamates", usecase.NormalizeQuestion("  Who are KerjaBantu's   KerjaMates?? "))
	assert.Equal(t, "", usecase.NormalizeQuestion("?!"))
}

func TestAsk_FindsAcrossTopics(t *testing.T) {
	h := newHarness(t)

	result := h.consult.Ask(ctx, &model.ConsultAskRequest{Question: "How do fees work?"})
	requireOK(t, result)
	answer := result.Data.(model.ConsultAnswerResponse)
	assert.True(t, answer.Matched)
	assert.Equal(t, "pricing", answer.Topic)
	assert.Contains(t, answer.Message, "15%")
	assert.Len(t, answer.FollowUp, 3)
}

func TestAsk_TopicRestrictsLookup(t *testing.T) {
	h := newHarness(t)

	result := h.consult.Ask(ctx, &model.ConsultAskRequest{Topic: "safety", Question: "How do fees work?"})
	requireOK(t, result)
	answer := result.Data.(model.ConsultAnswerResponse)
	assert.False(t, answer.Matched)
	assert.Equal(t, []string{"general", "career", "skills", "pricing", "safety"}, answer.FollowUp)
}

func TestAsk_Validation(t *testing.T) {
	h := newHarness(t)
	requireCode(t, h.consult.Ask(ctx, &model.ConsultAskRequest{Topic: "gossip", Question: "hi"}), 400)
	requireCode(t, h.consult.Ask(ctx, &model.ConsultAskRequest{}), 400)
}

func TestListTopics(t *testing.T) {
	h := newHarness(t)
	topics := h.consult.ListTopics(ctx).Data.([]model.ConsultTopicResponse)
	assert.Len(t, topics, 5)
	assert.Equal(t, "general", topics[0].Topic)
	assert.Len(t, topics[0].Questions, 3)
}
