package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-dashboard/internal/domain/model"
)

func TestFeedNotifier_keepsMostRecent(t *testing.T) {
	feed := NewFeedNotifier(2)

	feed.Notify(model.NotificationInfo, "first")
	feed.Notify(model.NotificationSuccess, "second")
	feed.Notify(model.NotificationError, "third")

	recent := feed.Recent()
	if len(recent) != 2 {
		t.Fatalf("len(Recent()) = %d; want 2", len(recent))
	}
	if recent[0].Message != "second" || recent[1].Message != "third" {
		t.Errorf("Recent() = %v; want second, third", recent)
	}
	if recent[1].Kind != model.NotificationError {
		t.Errorf("kind = %q; want error", recent[1].Kind)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("notification has no creation time")
	}
}

func TestMultiNotifier_fansOut(t *testing.T) {
	a, b := NewFeedNotifier(5), NewFeedNotifier(5)
	calls := 0
	counter := NotifierFunc(func(model.NotificationKind, string) { calls++ })

	MultiNotifier{a, b, counter}.Notify(model.NotificationInfo, "hello")

	if len(a.Recent()) != 1 || len(b.Recent()) != 1 || calls != 1 {
		t.Errorf("fan out = %d, %d, %d; want 1 each", len(a.Recent()), len(b.Recent()), calls)
	}
}

func TestFeedNotifier_Prune(t *testing.T) {
	feed := NewFeedNotifier(5)
	feed.Notify(model.NotificationInfo, "old")
	cutoff := time.Now().Add(time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	feed.Notify(model.NotificationInfo, "new")

	if dropped := feed.Prune(cutoff); dropped != 1 {
		t.Errorf("Prune() = %d; want 1", dropped)
	}
	recent := feed.Recent()
	if len(recent) != 1 || recent[0].Message != "new" {
		t.Errorf("Recent() = %v; want only the new notification", recent)
	}
}

type sentMessage struct {
	queueName string
	body      any
}

type fakeSender struct {
	sent chan sentMessage
	err  error
}

func (s *fakeSender) SendMessage(_ context.Context, queueName string, body any) error {
	s.sent <- sentMessage{queueName: queueName, body: body}
	return s.err
}

func TestQueueNotifier_sendsNotification(t *testing.T) {
	sender := &fakeSender{sent: make(chan sentMessage, 1)}
	NewQueueNotifier(sender, "toasts").Notify(model.NotificationSuccess, "Added Paris to your dashboard")

	select {
	case got := <-sender.sent:
		if got.queueName != "toasts" {
			t.Errorf("queue = %q; want toasts", got.queueName)
		}
		notification, ok := got.body.(model.Notification)
		if !ok {
			t.Fatalf("body type = %T; want model.Notification", got.body)
		}
		if notification.Kind != model.NotificationSuccess || notification.Message != "Added Paris to your dashboard" {
			t.Errorf("notification = %+v", notification)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestQueueNotifier_failureDoesNotReachCaller(t *testing.T) {
	sender := &fakeSender{sent: make(chan sentMessage, 1), err: errors.New("queue down")}
	NewQueueNotifier(sender, "toasts").Notify(model.NotificationError, "boom")

	select {
	case <-sender.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not attempted")
	}
}
