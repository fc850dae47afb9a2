package logic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"plume/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks plume/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartApubRequestIn(label string) IRequestObserver
	StartApubRequestOut(label string) IRequestObserver
	ActivityHandled(verb string)
	ActivityRejected(reason string)
	DuplicateActivity()
	ActorFetch(outcome string)
	InstanceFetch(outcome string)
	Delivery(outcome string)
	DeliveryQueueLength(length int)
	TotalFollowers(count int)
	ServiceStarted()
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                 *shared.Config
	apubRequestsIn      *prometheus.HistogramVec
	apubRequestsOut     *prometheus.HistogramVec
	activitiesHandled   *prometheus.CounterVec
	activitiesRejected  *prometheus.CounterVec
	duplicateActivities prometheus.Counter
	actorFetches        *prometheus.CounterVec
	instanceFetches     *prometheus.CounterVec
	deliveries          *prometheus.CounterVec
	deliveryQueueLength prometheus.Gauge
	totalFollowers      prometheus.Gauge
	serviceStarted      prometheus.Counter
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.apubRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_in_duration",
		Help: "Duration in seconds of ActivityPub requests served.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsIn)

	res.apubRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_out_duration",
		Help: "Duration in seconds of ActivityPub requests made.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsOut)

	res.activitiesHandled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "activities_handled",
		Help: "Number of inbound activities handled, by verb",
	}, []string{"verb"})
	prometheus.Register(res.activitiesHandled)

	res.activitiesRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "activities_rejected",
		Help: "Number of inbound activities rejected, by reason",
	}, []string{"reason"})
	prometheus.Register(res.activitiesRejected)

	res.duplicateActivities = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "duplicate_activities",
		Help: "Number of inbound activities dropped as already handled",
	})
	prometheus.Register(res.duplicateActivities)

	res.actorFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "actor_fetches",
		Help: "Number of remote actor fetches, by outcome",
	}, []string{"outcome"})
	prometheus.Register(res.actorFetches)

	res.instanceFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "instance_fetches",
		Help: "Number of remote instance metadata fetches, by outcome",
	}, []string{"outcome"})
	prometheus.Register(res.instanceFetches)

	res.deliveries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deliveries",
		Help: "Number of outbound delivery attempts, by outcome",
	}, []string{"outcome"})
	prometheus.Register(res.deliveries)

	res.deliveryQueueLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "delivery_queue_length",
		Help: "Items in outbound delivery queue",
	})
	prometheus.Register(res.deliveryQueueLength)

	res.totalFollowers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_follower_count",
		Help: "Total follower count of local accounts",
	})
	prometheus.Register(res.totalFollowers)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartApubRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsIn}
}

func (m *metrics) StartApubRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsOut}
}

func (m *metrics) ActivityHandled(verb string) {
	m.activitiesHandled.WithLabelValues(verb).Add(1)
}

func (m *metrics) ActivityRejected(reason string) {
	m.activitiesRejected.WithLabelValues(reason).Add(1)
}

func (m *metrics) DuplicateActivity() {
	m.duplicateActivities.Add(1)
}

func (m *metrics) ActorFetch(outcome string) {
	m.actorFetches.WithLabelValues(outcome).Add(1)
}

func (m *metrics) InstanceFetch(outcome string) {
	m.instanceFetches.WithLabelValues(outcome).Add(1)
}

func (m *metrics) Delivery(outcome string) {
	m.deliveries.WithLabelValues(outcome).Add(1)
}

func (m *metrics) DeliveryQueueLength(length int) {
	m.deliveryQueueLength.Set(float64(length))
}

func (m *metrics) TotalFollowers(count int) {
	m.totalFollowers.Set(float64(count))
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}
