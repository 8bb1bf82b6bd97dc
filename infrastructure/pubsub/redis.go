// Package pubsub replica os eventos do dashboard entre instâncias através do Redis
package pubsub

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/realtime"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope é a mensagem publicada no canal: a sala de destino e o frame já no formato do websocket
type Envelope struct {
	Room  string              `json:"room"`
	Frame jsoniter.RawMessage `json:"frame"`
}

type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Broadcaster é o lado local que entrega o frame aos clientes conectados
type Broadcaster interface {
	BroadcastRaw(room string, payload []byte) error
}

func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "REDIS_URL inválida")
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "falha ao conectar no Redis")
	}

	return client, nil
}

type RedisNotifier struct {
	publisher Publisher
	channel   string
}

func NewRedisNotifier(publisher Publisher, channel string) *RedisNotifier {
	return &RedisNotifier{
		publisher: publisher,
		channel:   channel,
	}
}

// NotifyNewSale publica o evento newSale; cada instância entrega aos seus clientes via Relay
func (n *RedisNotifier) NotifyNewSale(ctx context.Context, sale *domain.SaleDetails) error {
	frame, err := json.Marshal(realtime.Frame{Event: realtime.EventNewSale, Data: sale})
	if err != nil {
		return errors.Wrap(err, "erro ao serializar venda")
	}

	message, err := json.Marshal(Envelope{Room: realtime.DashboardRoom, Frame: frame})
	if err != nil {
		return errors.Wrap(err, "erro ao serializar envelope")
	}

	if err := n.publisher.Publish(ctx, n.channel, message).Err(); err != nil {
		return fmt.Errorf("erro ao publicar no canal %s: %w", n.channel, err)
	}

	return nil
}

type Relay struct {
	client  *redis.Client
	channel string
	local   Broadcaster
}

func NewRelay(client *redis.Client, channel string, local Broadcaster) *Relay {
	return &Relay{
		client:  client,
		channel: channel,
		local:   local,
	}
}

// Run assina o canal e repassa as mensagens ao hub local até o contexto ser cancelado
func (r *Relay) Run(ctx context.Context) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return errors.Wrapf(err, "erro ao assinar o canal %s", r.channel)
	}

	logrus.WithField("channel", r.channel).Info("Relay do Redis iniciado")

	return relay(ctx, sub.Channel(), r.local)
}

func relay(ctx context.Context, messages <-chan *redis.Message, local Broadcaster) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			deliver(msg, local)
		}
	}
}

func deliver(msg *redis.Message, local Broadcaster) {
	var envelope Envelope
	if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
		logrus.WithFields(logrus.Fields{
			"channel": msg.Channel,
			"error":   err,
		}).Warn("Mensagem inválida recebida do Redis")
		return
	}

	if envelope.Room == "" || len(envelope.Frame) == 0 {
		return
	}

	if err := local.BroadcastRaw(envelope.Room, envelope.Frame); err != nil {
		logrus.WithFields(logrus.Fields{
			"room":  envelope.Room,
			"error": err,
		}).Warn("Falha ao repassar evento do Redis")
	}
}
