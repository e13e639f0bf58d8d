package app

import (
	"crypto/rand"
	"fmt"

	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
	passwordService "github.com/allisson/fibrohash/internal/password/service"
	passwordUseCase "github.com/allisson/fibrohash/internal/password/usecase"
)

// GeneratorUseCase returns the password generator use case.
func (c *Container) GeneratorUseCase() (passwordUseCase.GeneratorUseCase, error) {
	var err error
	c.generatorUseCaseInit.Do(func() {
		c.generatorUseCase, err = c.initGeneratorUseCase()
		if err != nil {
			c.initErrors["generatorUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["generatorUseCase"]; exists {
		return nil, storedErr
	}
	return c.generatorUseCase, nil
}

// ReportUseCase returns the password audit and report use case.
func (c *Container) ReportUseCase() (passwordUseCase.ReportUseCase, error) {
	var err error
	c.reportUseCaseInit.Do(func() {
		c.reportUseCase, err = c.initReportUseCase()
		if err != nil {
			c.initErrors["reportUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["reportUseCase"]; exists {
		return nil, storedErr
	}
	return c.reportUseCase, nil
}

// initGeneratorUseCase creates the generator use case with all its dependencies.
func (c *Container) initGeneratorUseCase() (passwordUseCase.GeneratorUseCase, error) {
	settings, err := c.Settings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for generator use case: %w", err)
	}

	// A no-op recorder when metrics are disabled.
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for generator use case: %w", err)
	}

	baseUseCase := passwordUseCase.NewGeneratorUseCase(
		settings,
		passwordService.NewPhraseSanitizer(settings.MaxPhraseBytes),
		passwordService.NewPBKDF2Deriver(),
		passwordService.NewHMACExpander(rand.Reader),
		passwordService.NewRejectionEncoder(),
		rand.Reader,
		c.Logger(),
		businessMetrics,
	)

	if c.config.MetricsEnabled {
		return passwordUseCase.NewGeneratorUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initReportUseCase creates the report use case with all its dependencies.
func (c *Container) initReportUseCase() (passwordUseCase.ReportUseCase, error) {
	settings, err := c.Settings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for report use case: %w", err)
	}

	auditor := passwordService.NewSecurityAuditor(settings)
	validator := passwordService.NewPasswordValidator(passwordDomain.DefaultPolicy(settings), auditor)
	baseUseCase := passwordUseCase.NewReportUseCase(settings, auditor, validator)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for report use case: %w", err)
		}
		return passwordUseCase.NewReportUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
