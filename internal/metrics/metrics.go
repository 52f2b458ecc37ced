package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WaitlistSignups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waitlist_signups_total",
		Help: "Successful waitlist signups",
	}, []string{"role"})

	ChatReplies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_replies_total",
		Help: "Canned chat replies by matched topic",
	}, []string{"topic"})

	FounderThinkRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "founder_think_runs_total",
		Help: "Founder think runs by team conflict status",
	}, []string{"conflict"})

	FounderChatReplies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "founder_chat_replies_total",
		Help: "Founder chat replies by source",
	}, []string{"source"})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_rate_limited_total",
		Help: "Requests rejected by the per-client rate limiter",
	}, []string{"route"})

	WaitlistSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "waitlist_users",
		Help: "Waitlist size per role at the last digest run",
	}, []string{"role"})
)
