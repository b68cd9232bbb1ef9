package service

import (
	"github.com/dapoades/slack-roster-bot/internal/domain/contract"
	"github.com/rs/zerolog"
)

type Instance struct {
	Roster    *rosterService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackAPI, log zerolog.Logger) *Instance {
	rosterService := newRoster(dm, slackClient, log)
	sched := newScheduler(dm, rosterService, log)
	rosterService.SetScheduler(sched)

	return &Instance{
		Roster:    rosterService,
		Scheduler: sched,
	}
}
