// Package appconfig fetches feature flags from AWS AppConfig. A fresh
// configuration session is started for every fetch: flags are externally
// mutable at any time and the handlers trade latency for freshness.
package appconfig

import (
	"context"
	"log/slog"

	"order-service/internal/infra"
	"order-service/internal/pkg/config"
	"order-service/internal/pkg/featureflags"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/appconfigdata"
)

type API interface {
	StartConfigurationSession(ctx context.Context, params *appconfigdata.StartConfigurationSessionInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.StartConfigurationSessionOutput, error)
	GetLatestConfiguration(ctx context.Context, params *appconfigdata.GetLatestConfigurationInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.GetLatestConfigurationOutput, error)
}

type FlagSource struct {
	client API
	cfg    config.AppConfigConfig
	logger *slog.Logger
}

func NewFlagSource(client API, cfg config.AppConfigConfig, logger *slog.Logger) *FlagSource {
	return &FlagSource{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Fetch returns the named flags, or the full flag set when no names are
// given. One attempt only; the caller's deadline bounds the latency
// contribution. Transport failures and shape mismatches both surface as
// CONFIG_UNAVAILABLE.
func (s *FlagSource) Fetch(ctx context.Context, names ...string) (featureflags.Flags, error) {
	session, err := s.client.StartConfigurationSession(ctx, &appconfigdata.StartConfigurationSessionInput{
		ApplicationIdentifier:                aws.String(s.cfg.ApplicationID),
		EnvironmentIdentifier:                aws.String(s.cfg.EnvironmentID),
		ConfigurationProfileIdentifier:       aws.String(s.cfg.ConfigurationID),
		RequiredMinimumPollIntervalInSeconds: aws.Int32(15),
	})
	if err != nil {
		return nil, infra.WrapDepErr(s.logger, infra.KindConfigUnavailable, "failed to start configuration session", err)
	}

	latest, err := s.client.GetLatestConfiguration(ctx, &appconfigdata.GetLatestConfigurationInput{
		ConfigurationToken: session.InitialConfigurationToken,
	})
	if err != nil {
		return nil, infra.WrapDepErr(s.logger, infra.KindConfigUnavailable, "failed to get latest configuration", err)
	}

	flags, err := featureflags.Decode(latest.Configuration)
	if err != nil {
		return nil, infra.WrapDepErr(s.logger, infra.KindConfigUnavailable, "failed to decode flag configuration", err)
	}

	if len(names) == 0 {
		return flags, nil
	}

	subset := make(featureflags.Flags, len(names))
	for _, name := range names {
		if flag, ok := flags[name]; ok {
			subset[name] = flag
		}
	}
	return subset, nil
}
