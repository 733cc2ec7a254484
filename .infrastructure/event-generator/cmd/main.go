package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	eventsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_generator_events_total",
		Help: "Количество отправленных событий order.status.changed",
	}, []string{"status", "result"})

	sendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "event_generator_send_duration_seconds",
		Help:    "Длительность отправки в секундах",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})
)

// порядок жизненного цикла заказа, cancelled может прийти на любом шаге
var lifecycle = []string{"pending", "cooking", "ready", "out_for_delivery", "delivered"}

type statusChangedEvent struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "Kafka brokers через запятую")
	topic := flag.String("topic", "order.status.changed", "Kafka topic")
	interval := flag.Duration("interval", 2*time.Second, "пауза между событиями")
	orders := flag.Int64("orders", 20, "диапазон order_id")
	cancelRate := flag.Float64("cancel-rate", 0.1, "доля отмен")
	flag.Parse()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(strings.Split(*brokers, ","), cfg)
	if err != nil {
		log.Fatalf("kafka producer: %v", err)
	}
	defer producer.Close()

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":2112", nil); err != nil {
			log.Printf("metrics server: %v", err)
		}
	}()

	progress := make(map[int64]int)
	for {
		orderID := rand.Int64N(*orders) + 1

		status := "cancelled"
		if rand.Float64() >= *cancelRate {
			step := progress[orderID]
			status = lifecycle[step%len(lifecycle)]
			progress[orderID] = step + 1
		}

		send(producer, *topic, statusChangedEvent{OrderID: orderID, Status: status})
		time.Sleep(*interval)
	}
}

func send(producer sarama.SyncProducer, topic string, event statusChangedEvent) {
	start := time.Now()
	defer func() {
		sendDuration.Observe(time.Since(start).Seconds())
	}()

	payload, err := json.Marshal(event)
	if err != nil {
		eventsCounter.WithLabelValues(event.Status, "error").Inc()
		log.Printf("marshal event: %v", err)
		return
	}

	_, _, err = producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		eventsCounter.WithLabelValues(event.Status, "error").Inc()
		log.Printf("send event order=%d status=%s: %v", event.OrderID, event.Status, err)
		return
	}

	eventsCounter.WithLabelValues(event.Status, "ok").Inc()
}
