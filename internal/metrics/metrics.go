package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "faucet"

// Service owns a dedicated registry so that every server instance (and every
// test server) exports its own collectors.
type Service struct {
	Registry *prometheus.Registry

	// Disbursements counts terminal outcomes by outcome and reason.
	Disbursements *prometheus.CounterVec
	// DisbursedWei is the total amount submitted to the network.
	DisbursedWei prometheus.Counter
	// FeeQuotes counts negotiated quotes by kind and source.
	FeeQuotes *prometheus.CounterVec
	// InsufficientFunds is 1 while the last submission failed for lack of funds.
	InsufficientFunds prometheus.Gauge
	// FaucetBalance is the last observed balance of the faucet account in whole tokens.
	FaucetBalance prometheus.Gauge
	// KnownAddresses is the number of requester records held in memory.
	KnownAddresses prometheus.Gauge
}

func New() *Service {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Service{
		Registry: registry,
		Disbursements: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "disbursements_total",
			Help:      "Disbursement requests by terminal outcome and reason",
		}, []string{"outcome", "reason"}),
		DisbursedWei: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "disbursed_wei_total",
			Help:      "Total amount of submitted disbursements in wei",
		}),
		FeeQuotes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fee_quotes_total",
			Help:      "Negotiated fee quotes by kind and source",
		}, []string{"kind", "source"}),
		InsufficientFunds: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "insufficient_funds",
			Help:      "1 if the last submission failed because the faucet account is empty",
		}),
		FaucetBalance: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "balance_tokens",
			Help:      "Last observed balance of the faucet account",
		}),
		KnownAddresses: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "known_addresses",
			Help:      "Number of requester addresses tracked by the quota ledger",
		}),
	}
}
