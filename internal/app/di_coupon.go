package app

import (
	"fmt"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
	couponHTTP "github.com/allisson/coupons/internal/coupon/http"
	couponRepository "github.com/allisson/coupons/internal/coupon/repository"
	couponService "github.com/allisson/coupons/internal/coupon/service"
	couponUsecase "github.com/allisson/coupons/internal/coupon/usecase"
)

// CodeService returns the code generation and validation service.
func (c *Container) CodeService() couponService.CodeService {
	c.codeServiceInit.Do(func() {
		c.codeService = c.initCodeService()
	})
	return c.codeService
}

// FormatProfileRepository returns the format profile repository based on database driver.
func (c *Container) FormatProfileRepository() (couponUsecase.FormatProfileRepository, error) {
	var err error
	c.formatProfileRepoInit.Do(func() {
		c.formatProfileRepository, err = c.initFormatProfileRepository()
		if err != nil {
			c.initErrors["formatProfileRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["formatProfileRepository"]; exists {
		return nil, storedErr
	}
	return c.formatProfileRepository, nil
}

// CouponUseCase returns the coupon use case.
func (c *Container) CouponUseCase() (couponUsecase.CouponUseCase, error) {
	var err error
	c.couponUseCaseInit.Do(func() {
		c.couponUseCase, err = c.initCouponUseCase()
		if err != nil {
			c.initErrors["couponUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["couponUseCase"]; exists {
		return nil, storedErr
	}
	return c.couponUseCase, nil
}

// FormatProfileUseCase returns the format profile use case.
func (c *Container) FormatProfileUseCase() (couponUsecase.FormatProfileUseCase, error) {
	var err error
	c.formatProfileUseCaseInit.Do(func() {
		c.formatProfileUseCase, err = c.initFormatProfileUseCase()
		if err != nil {
			c.initErrors["formatProfileUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["formatProfileUseCase"]; exists {
		return nil, storedErr
	}
	return c.formatProfileUseCase, nil
}

// CouponHandler returns the HTTP handler for coupon code operations.
func (c *Container) CouponHandler() (*couponHTTP.CouponHandler, error) {
	var err error
	c.couponHandlerInit.Do(func() {
		c.couponHandler, err = c.initCouponHandler()
		if err != nil {
			c.initErrors["couponHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["couponHandler"]; exists {
		return nil, storedErr
	}
	return c.couponHandler, nil
}

// FormatProfileHandler returns the HTTP handler for format profile management.
func (c *Container) FormatProfileHandler() (*couponHTTP.FormatProfileHandler, error) {
	var err error
	c.formatProfileHandlerInit.Do(func() {
		c.formatProfileHandler, err = c.initFormatProfileHandler()
		if err != nil {
			c.initErrors["formatProfileHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["formatProfileHandler"]; exists {
		return nil, storedErr
	}
	return c.formatProfileHandler, nil
}

// initCodeService creates the code service with the default bad word filter.
func (c *Container) initCodeService() couponService.CodeService {
	return couponService.NewCodeService(couponDomain.DefaultBadWordFilter())
}

// initFormatProfileRepository creates the format profile repository based on the database driver.
func (c *Container) initFormatProfileRepository() (couponUsecase.FormatProfileRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for format profile repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return couponRepository.NewPostgreSQLFormatProfileRepository(db), nil
	case "mysql":
		return couponRepository.NewMySQLFormatProfileRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCouponUseCase creates the coupon use case with all its dependencies.
func (c *Container) initCouponUseCase() (couponUsecase.CouponUseCase, error) {
	formatProfileRepository, err := c.FormatProfileRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get format profile repository for coupon use case: %w", err)
	}

	defaultFormat, err := couponDomain.NewCodeFormat(
		c.config.CodePrefix,
		c.config.CodeSeparator,
		c.config.CodeParts,
		c.config.CodePartLength,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid default code format: %w", err)
	}

	useCaseConfig := couponUsecase.Config{
		DefaultFormat:    defaultFormat,
		BatchMaxSize:     c.config.BatchMaxSize,
		BatchConcurrency: c.config.BatchConcurrency,
	}

	baseUseCase := couponUsecase.NewCouponUseCase(c.CodeService(), formatProfileRepository, useCaseConfig)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for coupon use case: %w", err)
		}
		return couponUsecase.NewCouponUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initFormatProfileUseCase creates the format profile use case with all its dependencies.
func (c *Container) initFormatProfileUseCase() (couponUsecase.FormatProfileUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for format profile use case: %w", err)
	}

	formatProfileRepository, err := c.FormatProfileRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get format profile repository for format profile use case: %w", err)
	}

	baseUseCase := couponUsecase.NewFormatProfileUseCase(txManager, formatProfileRepository)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for format profile use case: %w", err)
		}
		return couponUsecase.NewFormatProfileUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initCouponHandler creates the coupon HTTP handler with all its dependencies.
func (c *Container) initCouponHandler() (*couponHTTP.CouponHandler, error) {
	couponUseCase, err := c.CouponUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get coupon use case for coupon handler: %w", err)
	}

	logger := c.Logger()

	return couponHTTP.NewCouponHandler(couponUseCase, logger), nil
}

// initFormatProfileHandler creates the format profile HTTP handler with all its dependencies.
func (c *Container) initFormatProfileHandler() (*couponHTTP.FormatProfileHandler, error) {
	formatProfileUseCase, err := c.FormatProfileUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get format profile use case for format profile handler: %w", err)
	}

	logger := c.Logger()

	return couponHTTP.NewFormatProfileHandler(formatProfileUseCase, logger), nil
}
