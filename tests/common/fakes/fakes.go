//go:build unit || e2e

// Package fakes holds recording test doubles for outbound ports.
package fakes

import (
	"context"
	"sync"

	"travel-broker/internal/domain/event"
	"travel-broker/internal/domain/notification"
)

type Publisher struct {
	mu     sync.Mutex
	events []event.Event
	Err    error
}

func (p *Publisher) Publish(_ context.Context, e event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.Err
}

func (p *Publisher) Events() []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]event.Event(nil), p.events...)
}

// Named returns the recorded events with the given name.
func (p *Publisher) Named(name string) []event.Event {
	var out []event.Event
	for _, e := range p.Events() {
		if e.Name() == name {
			out = append(out, e)
		}
	}
	return out
}

type Sender struct {
	mu    sync.Mutex
	calls [][]notification.Request
	Err   error
}

func (s *Sender) SendAll(_ context.Context, reqs []notification.Request) ([]notification.DeliveryResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, append([]notification.Request(nil), reqs...))
	if s.Err != nil {
		return nil, s.Err
	}
	results := make([]notification.DeliveryResult, len(reqs))
	for i, r := range reqs {
		results[i] = notification.DeliveryResult{Request: r, Delivered: true}
	}
	return results, nil
}

func (s *Sender) Calls() [][]notification.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]notification.Request(nil), s.calls...)
}
