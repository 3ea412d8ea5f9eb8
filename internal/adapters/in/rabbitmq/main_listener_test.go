package rabbitmq

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
)

func TestParseCacheMessageRoutingKey(t *testing.T) {
	listener := &CacheHitListener{}

	tests := []struct {
		name             string
		routingKey       string
		wantResourceType CacheHitResourceType
		wantHitType      CacheHitType
		wantErr          bool
	}{
		{
			name:             "appointment store",
			routingKey:       "portal.availability-generator-svc.appointment.42.store",
			wantResourceType: CacheHitResourceTypeAppointment,
			wantHitType:      CacheHitTypeStore,
		},
		{
			name:             "availability invalidate",
			routingKey:       "portal.availability-generator-svc.availability.42.invalidate",
			wantResourceType: CacheHitResourceTypeAvailability,
			wantHitType:      CacheHitTypeInvalidate,
		},
		{
			name:             "all invalidate",
			routingKey:       "portal.availability-generator-svc._all_._all_.invalidate",
			wantResourceType: CacheHitResourceTypeAll,
			wantHitType:      CacheHitTypeInvalidate,
		},
		{
			name:       "too few parts",
			routingKey: "portal.appointment.store",
			wantErr:    true,
		},
		{
			name:       "empty",
			routingKey: "",
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := listener.parseCacheMessageRoutingKey(context.Background(), amqp.Delivery{RoutingKey: tt.routingKey})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.routingKey)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if key.Source != "portal" {
				t.Fatalf("expected source portal, got %s", key.Source)
			}
			if key.ResourceType != tt.wantResourceType {
				t.Fatalf("expected resource type %s, got %s", tt.wantResourceType, key.ResourceType)
			}
			if key.CacheHitType != tt.wantHitType {
				t.Fatalf("expected hit type %s, got %s", tt.wantHitType, key.CacheHitType)
			}
		})
	}
}
