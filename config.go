// Copyright 2024 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package result

import (
	"context"
	"log/slog"
)

// Config controls the diagnostics of the bridge functions.
// It never affects the returned Result values.
type Config struct {
	// Verbose, if true, logs every rejection reason and every recovered
	// panic value that's turned into an Err by the bridge functions.
	// The default is false.
	Verbose bool

	// Logger is where the Verbose logs are written.
	// If it's nil, slog.Default() is used.
	Logger *slog.Logger
}

type configKey struct{}

// WithConfig returns a copy of ctx which carries cfg, to be used by the
// bridge functions that receive it, or any context derived from it.
func WithConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFrom returns the Config carried by ctx, or the zero Config if ctx
// doesn't carry one.
func ConfigFrom(ctx context.Context) Config {
	if ctx == nil {
		return Config{}
	}
	cfg, _ := ctx.Value(configKey{}).(Config)
	return cfg
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// logCaptured logs the rejection reason, or the recovered panic value, v,
// only if the Config carried by ctx is Verbose.
func logCaptured(ctx context.Context, msg string, v any) {
	cfg := ConfigFrom(ctx)
	if !cfg.Verbose {
		return
	}

	if rerr, ok := v.(*ResultError); ok {
		cfg.logger().ErrorContext(ctx, msg, "payload", rerr.payload, "passthrough", true)
		return
	}
	cfg.logger().ErrorContext(ctx, msg, "reason", v)
}
