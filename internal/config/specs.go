// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// AdminEmails are promoted to the administrator role on first resolution
	// and retroactively on lookup if the role has drifted.
	AdminEmails []string `envconfig:"admin_emails"`

	// NotificationRetentionDays bounds how long read and unread notifications
	// are kept before the periodic cleanup purges them.
	NotificationRetentionDays int           `envconfig:"notification_retention_days" default:"90"`
	NotificationCleanupEvery  time.Duration `envconfig:"notification_cleanup_every" default:"24h"`
}
