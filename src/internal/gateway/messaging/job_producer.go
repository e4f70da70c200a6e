package messaging

import (
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/pkg/log"
)

const (
	TopicJobPosted        = "job-posted"
	TopicJobAssigned      = "job-assigned"
	TopicJobStatusChanged = "job-status-changed"
	TopicJobMatchesFound  = "job-matches-found"
)

type JobProducer struct {
	PostedProducer        Producer[*model.JobEvent]
	AssignedProducer      Producer[*model.JobEvent]
	StatusChangedProducer Producer[*model.JobEvent]
	MatchesProducer       Producer[*model.JobMatchesEvent]
}

func NewJobProducer(publisher Publisher, log log.Log) *JobProducer {
	return &JobProducer{
		PostedProducer: Producer[*model.JobEvent]{
			Publisher: publisher,
			Topic:     TopicJobPosted,
			Log:       log,
		},
		AssignedProducer: Producer[*model.JobEvent]{
			Publisher: publisher,
			Topic:     TopicJobAssigned,
			Log:       log,
		},
		StatusChangedProducer: Producer[*model.JobEvent]{
			Publisher: publisher,
			Topic:     TopicJobStatusChanged,
			Log:       log,
		},
		MatchesProducer: Producer[*model.JobMatchesEvent]{
			Publisher: publisher,
			Topic:     TopicJobMatchesFound,
			Log:       log,
		},
	}
}

func (p *JobProducer) SendJobPosted(event *model.JobEvent) error {
	return p.PostedProducer.Send(event)
}

func (p *JobProducer) SendJobAssigned(event *model.JobEvent) error {
	return p.AssignedProducer.Send(event)
}

func (p *JobProducer) SendJobStatusChanged(event *model.JobEvent) error {
	return p.StatusChangedProducer.Send(event)
}

func (p *JobProducer) SendMatchesFound(event *model.JobMatchesEvent) error {
	return p.MatchesProducer.Send(event)
}
