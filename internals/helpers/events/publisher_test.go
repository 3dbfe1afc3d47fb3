package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit_RecordsEvent(t *testing.T) {
	rec := &Recorder{}
	Emit(context.Background(), rec, "activity", ActionCreated, "abc")

	evs := rec.Events()
	require.Len(t, evs, 1)
	assert.Equal(t, "activity", evs[0].Resource)
	assert.Equal(t, ActionCreated, evs[0].Action)
	assert.Equal(t, "abc", evs[0].ID)
	assert.False(t, evs[0].At.IsZero())
}

func TestEmit_SwallowsErrorAndNil(t *testing.T) {
	rec := &Recorder{Err: errors.New("broker down")}
	assert.NotPanics(t, func() {
		Emit(context.Background(), rec, "staff", ActionDeleted, "1")
		Emit(context.Background(), nil, "staff", ActionDeleted, "1")
	})
	assert.Empty(t, rec.Events())
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), NewEvent("x", ActionUpdated, "")))
	assert.NoError(t, p.Close())
}

func TestKafkaPublisher_SendsJSON(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev Event
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		if ev.Resource != "financial_report" || ev.Action != ActionCreated {
			return errors.New("unexpected event payload")
		}
		return nil
	})

	p := &KafkaPublisher{producer: producer, topic: "koperasi.content"}
	require.NoError(t, p.Publish(context.Background(), NewEvent("financial_report", ActionCreated, "2024-05")))
	require.NoError(t, p.Close())
}

func TestKafkaPublisher_SendError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := &KafkaPublisher{producer: producer, topic: "t"}
	err := p.Publish(context.Background(), NewEvent("member", ActionDeleted, "1"))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}
