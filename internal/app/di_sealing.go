package app

import (
	"context"
	"fmt"
	"log/slog"

	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
	sealingService "github.com/allisson/sealfield/internal/sealing/service"
	sealingUseCase "github.com/allisson/sealfield/internal/sealing/usecase"
)

// KMSService returns the KMS service.
func (c *Container) KMSService() sealingService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = sealingService.NewKMSService()
	})
	return c.kmsService
}

// KeyStore returns the master key store. It is empty until SetupMasterKey is called.
func (c *Container) KeyStore() *sealingService.KeyStore {
	c.keyStoreInit.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.keyStore = sealingService.NewKeyStore()
	})
	return c.keyStore
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() sealingService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = sealingService.NewAEADManager()
	})
	return c.aeadManager
}

// Engine returns the sealing engine.
func (c *Container) Engine() *sealingService.Engine {
	c.engineInit.Do(func() {
		c.engine = sealingService.NewEngine(
			c.KeyStore(),
			sealingService.NewRandomNonceGenerator(nil),
			c.AEADManager(),
		)
	})
	return c.engine
}

// SealerUseCase returns the sealer use case decorated with logging and metrics.
func (c *Container) SealerUseCase() (sealingUseCase.SealerUseCase, error) {
	var err error
	c.sealerUseCaseInit.Do(func() {
		c.sealerUseCase, err = c.initSealerUseCase()
		if err != nil {
			c.setInitError("sealerUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("sealerUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.sealerUseCase, nil
}

// SetupMasterKey loads the configured master key (unwrapping it through KMS when
// KMS_KEY_URI is set) into the key store.
func (c *Container) SetupMasterKey(ctx context.Context) error {
	if err := c.config.Validate(); err != nil {
		return err
	}

	masterKey, err := sealingService.LoadMasterKey(
		ctx,
		c.KMSService(),
		c.config.MasterKey,
		c.config.KMSKeyURI,
	)
	if err != nil {
		return fmt.Errorf("failed to load master key: %w", err)
	}
	defer sealingDomain.Zero(masterKey)

	if err := c.KeyStore().Setup(masterKey); err != nil {
		return err
	}

	c.Logger().DebugContext(ctx, "master key configured",
		slog.Bool("kms", c.config.KMSKeyURI != ""),
	)
	return nil
}

func (c *Container) initSealerUseCase() (sealingUseCase.SealerUseCase, error) {
	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}

	useCase := sealingUseCase.NewSealerUseCase(c.Engine())
	useCase = sealingUseCase.NewSealerUseCaseWithLogging(useCase, c.Logger())
	return sealingUseCase.NewSealerUseCaseWithMetrics(useCase, bm), nil
}
