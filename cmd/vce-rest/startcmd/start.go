/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alexliesenfeld/health"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/credentio/vce/internal/pkg/log"
	tlsutils "github.com/credentio/vce/internal/pkg/utils/tls"
	"github.com/credentio/vce/pkg/crypto/joseutil"
	"github.com/credentio/vce/pkg/doc/validator/jsonschema"
	"github.com/credentio/vce/pkg/event/inmemory"
	"github.com/credentio/vce/pkg/observability/health/healthutil"
	healthmongo "github.com/credentio/vce/pkg/observability/health/mongo"
	healthredis "github.com/credentio/vce/pkg/observability/health/redis"
	"github.com/credentio/vce/pkg/observability/metrics"
	"github.com/credentio/vce/pkg/observability/metrics/noop"
	promprovider "github.com/credentio/vce/pkg/observability/metrics/prometheus"
	"github.com/credentio/vce/pkg/observability/tracing"
	"github.com/credentio/vce/pkg/restapi/resterr"
	"github.com/credentio/vce/pkg/restapi/v1/healthcheck"
	issuerapi "github.com/credentio/vce/pkg/restapi/v1/issuer"
	"github.com/credentio/vce/pkg/restapi/v1/mw"
	statuslistapi "github.com/credentio/vce/pkg/restapi/v1/statuslist"
	verifierapi "github.com/credentio/vce/pkg/restapi/v1/verifier"
	"github.com/credentio/vce/pkg/service/issuance"
	"github.com/credentio/vce/pkg/service/statuscheck"
	"github.com/credentio/vce/pkg/service/statuslist"
	"github.com/credentio/vce/pkg/service/verification"
	memliststore "github.com/credentio/vce/pkg/storage/memstore/liststore"
	memnoncestore "github.com/credentio/vce/pkg/storage/memstore/noncestore"
	memofferstore "github.com/credentio/vce/pkg/storage/memstore/offerstore"
	memrequeststore "github.com/credentio/vce/pkg/storage/memstore/requeststore"
	memstatusstore "github.com/credentio/vce/pkg/storage/memstore/statusstore"
	memtokenstore "github.com/credentio/vce/pkg/storage/memstore/tokenstore"
	"github.com/credentio/vce/pkg/storage/mongodb"
	mongoliststore "github.com/credentio/vce/pkg/storage/mongodb/liststore"
	mongoofferstore "github.com/credentio/vce/pkg/storage/mongodb/offerstore"
	mongorequeststore "github.com/credentio/vce/pkg/storage/mongodb/requeststore"
	mongostatusstore "github.com/credentio/vce/pkg/storage/mongodb/statusstore"
	"github.com/credentio/vce/pkg/storage/redis"
	redisnoncestore "github.com/credentio/vce/pkg/storage/redis/noncestore"
	redistokenstore "github.com/credentio/vce/pkg/storage/redis/tokenstore"
	s3statusliststore "github.com/credentio/vce/pkg/storage/s3/statusliststore"
)

const (
	databaseName = "vce"

	healthCheckTimeout = 10 * time.Second
)

var logger = log.New("vce-rest")

type server interface {
	ListenAndServe(host string, router http.Handler) error
}

// HTTPServer represents an actual HTTP server implementation.
type HTTPServer struct{}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe(host string, router http.Handler) error {
	return http.ListenAndServe(host, router) //nolint:gosec
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(srv server) *cobra.Command {
	startCmd := createStartCmd(srv)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(srv server) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start vce-rest",
		Long:  "Start the credential exchange REST server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return err
			}

			return startService(params, srv)
		},
	}
}

type serviceStores struct {
	offerStore   issuance.OfferStore
	tokenStore   issuance.TokenStore
	requestStore verification.RequestStore
	nonceStore   verification.NonceStore
	stateStore   statuslist.StateStore
	listStore    statuslist.ListStore

	close func()
}

//nolint:funlen
func startService(params *startupParameters, srv server) error {
	if err := setLogLevel(params.logLevel); err != nil {
		return err
	}

	rootCAs, err := tlsutils.GetCertPool(params.tlsSystemCertPool, params.tlsCACerts)
	if err != nil {
		return err
	}

	tlsConfig := &tls.Config{RootCAs: rootCAs, MinVersion: tls.VersionTLS12}

	tracingShutdown, tracer, err := tracing.Initialize(params.tracingType, "vce-rest")
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer tracingShutdown()

	metricsProvider, err := createMetricsProvider(params)
	if err != nil {
		return err
	}

	eventBus := inmemory.NewEventBus()
	defer eventBus.Close() //nolint:errcheck

	signer, err := createSigner(params.signingKey)
	if err != nil {
		return err
	}

	externalHostURL := params.hostURL
	if params.hostURLExternal != "" {
		externalHostURL = params.hostURLExternal
	}

	externalHostURL = strings.TrimSuffix(externalHostURL, "/")

	issuerID := params.issuerID
	if issuerID == "" {
		issuerID = externalHostURL
	}

	verifierID := params.verifierID
	if verifierID == "" {
		verifierID = externalHostURL
	}

	statusListURL := externalHostURL + "/status-lists/" + params.statusListID

	stores, err := createStores(params, tlsConfig)
	if err != nil {
		return err
	}
	defer stores.close()

	statusListSvc := statuslist.NewService(&statuslist.Config{
		StateStore:   stores.stateStore,
		ListStore:    stores.listStore,
		EventService: eventBus,
		Signer:       signer,
		IssuerID:     issuerID,
		ListURL:      statusListURL,
		ListSize:     params.statusListSize,
	})

	issuanceSvc := issuance.NewService(&issuance.Config{
		OfferStore:        stores.offerStore,
		TokenStore:        stores.tokenStore,
		EventService:      eventBus,
		CredentialSigner:  signer,
		PinGenerator:      issuance.NewPinGenerator(),
		ClaimsValidator:   jsonschema.NewCachingValidator(),
		StatusListService: statusListSvc,
		IssuerID:          issuerID,
	})

	statusCheckSvc := statuscheck.NewService(&statuscheck.Config{
		HTTPClient:   &http.Client{Transport: &http.Transport{TLSClientConfig: tlsConfig}},
		LocalList:    statusListSvc,
		LocalListURL: statusListURL,
	})

	verificationSvc := verification.NewService(&verification.Config{
		RequestStore:          stores.requestStore,
		NonceStore:            stores.nonceStore,
		EventService:          eventBus,
		SignerVerifier:        signer,
		StatusChecker:         statusCheckSvc,
		Metrics:               metricsProvider,
		VerifierID:            verifierID,
		RequestObjectEndpoint: externalHostURL + "/verifier/requests",
	})

	router := buildRouter(params, tracer, issuanceSvc, statusListSvc, verificationSvc)

	logger.Info("Starting vce-rest server", log.WithAddress(params.hostURL))

	return srv.ListenAndServe(params.hostURL, router)
}

func buildRouter(
	params *startupParameters,
	tracer trace.Tracer,
	issuanceSvc issuance.ServiceInterface,
	statusListSvc statuslist.ServiceInterface,
	verificationSvc verification.ServiceInterface,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	apiKeyAuth := mw.APIKeyAuth(params.apiKey)

	healthCtrl := &healthcheck.Controller{}
	e.GET("/healthcheck", healthCtrl.GetHealthcheck)
	e.GET("/health", echo.WrapHandler(healthCheckHandler(params)))

	if params.mode == string(issuerMode) || params.mode == string(combinedMode) {
		issuerCtrl := issuerapi.NewController(&issuerapi.Config{
			IssuanceService:   issuanceSvc,
			StatusListService: statusListSvc,
			Tracer:            tracer,
		})

		e.POST("/issuer/offers", issuerCtrl.PostIssuerOffers, apiKeyAuth)
		e.POST("/issuer/credentials/revoke", issuerCtrl.PostCredentialsRevoke, apiKeyAuth)
		e.GET("/issuer/credentials/:credentialID/status", func(c echo.Context) error {
			return issuerCtrl.GetCredentialStatus(c, c.Param("credentialID"))
		})
		e.POST("/oidc/token", issuerCtrl.PostOidcToken)
		e.POST("/oidc/credential", issuerCtrl.PostOidcCredential)

		statusListCtrl := statuslistapi.NewController(&statuslistapi.Config{
			StatusListService: statusListSvc,
			ListID:            params.statusListID,
		})

		e.GET("/status-lists/:id", func(c echo.Context) error {
			return statusListCtrl.GetStatusList(c, c.Param("id"))
		})
	}

	if params.mode == string(verifierMode) || params.mode == string(combinedMode) {
		verifierCtrl := verifierapi.NewController(&verifierapi.Config{
			VerificationService: verificationSvc,
			Tracer:              tracer,
		})

		e.POST("/verifier/requests", verifierCtrl.PostVerifierRequests, apiKeyAuth)
		e.GET("/verifier/requests/:state/request-object", func(c echo.Context) error {
			return verifierCtrl.GetRequestObject(c, c.Param("state"))
		})
		e.POST("/verifier/presentations/:state/verify", func(c echo.Context) error {
			return verifierCtrl.PostVerifyPresentation(c, c.Param("state"))
		})
	}

	return e
}

//nolint:funlen
func createStores(params *startupParameters, tlsConfig *tls.Config) (*serviceStores, error) {
	stores := &serviceStores{close: func() {}}

	switch params.databaseType {
	case databaseTypeMongoDBOption:
		mongoClient, err := mongodb.New(params.mongoDBURL, databaseName,
			mongodb.WithTraceProvider(otel.GetTracerProvider()))
		if err != nil {
			return nil, fmt.Errorf("connect to mongodb: %w", err)
		}

		ctx := context.Background()

		stores.offerStore, err = mongoofferstore.New(ctx, mongoClient)
		if err != nil {
			return nil, fmt.Errorf("create offer store: %w", err)
		}

		stores.requestStore, err = mongorequeststore.New(ctx, mongoClient)
		if err != nil {
			return nil, fmt.Errorf("create request store: %w", err)
		}

		stores.stateStore, err = mongostatusstore.New(ctx, mongoClient)
		if err != nil {
			return nil, fmt.Errorf("create status store: %w", err)
		}

		mongoListStore, err := mongoliststore.New(ctx, mongoClient)
		if err != nil {
			return nil, fmt.Errorf("create list store: %w", err)
		}

		stores.listStore = mongoListStore
		stores.close = func() {
			if closeErr := mongoClient.Close(); closeErr != nil {
				logger.Warn("Failed to close mongodb client", log.WithError(closeErr))
			}
		}
	case databaseTypeMemOption:
		stores.offerStore = memofferstore.New()
		stores.requestStore = memrequeststore.New()
		stores.stateStore = memstatusstore.New()
		stores.listStore = memliststore.New()
	}

	if len(params.redisURL) > 0 {
		redisOpts := []redis.ClientOpt{
			redis.WithTraceProvider(otel.GetTracerProvider()),
			redis.WithTLSConfig(tlsConfig),
		}

		if params.redisPassword != "" {
			redisOpts = append(redisOpts, redis.WithPassword(params.redisPassword))
		}

		redisClient, err := redis.New(params.redisURL, redisOpts...)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}

		stores.tokenStore = redistokenstore.New(redisClient)
		stores.nonceStore = redisnoncestore.New(redisClient)
	} else {
		stores.tokenStore = memtokenstore.New()
		stores.nonceStore = memnoncestore.New()
	}

	if params.s3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(params.s3Region))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}

		stores.listStore = s3statusliststore.NewStore(
			s3.NewFromConfig(awsCfg), params.s3Bucket, params.s3Region, "")
	}

	return stores, nil
}

func createMetricsProvider(params *startupParameters) (metrics.Metrics, error) {
	if params.prometheusHost == "" {
		return noop.GetMetrics(), nil
	}

	provider := promprovider.NewPrometheusProvider(&http.Server{
		Addr:              params.prometheusHost,
		Handler:           promprovider.NewHandler(),
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	})

	if err := provider.Create(); err != nil {
		return nil, fmt.Errorf("start metrics provider: %w", err)
	}

	return provider.Metrics(), nil
}

func createSigner(encodedKey string) (*joseutil.SignerVerifier, error) {
	var privateKey ed25519.PrivateKey

	switch {
	case encodedKey == "":
		var err error

		_, privateKey, err = ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generate signing key: %w", err)
		}

		logger.Warn("No signing key configured, generated an ephemeral one. " +
			"Issued credentials will not verify across restarts.")
	default:
		raw, err := base64.StdEncoding.DecodeString(encodedKey)
		if err != nil {
			return nil, fmt.Errorf("decode signing key: %w", err)
		}

		switch len(raw) {
		case ed25519.SeedSize:
			privateKey = ed25519.NewKeyFromSeed(raw)
		case ed25519.PrivateKeySize:
			privateKey = ed25519.PrivateKey(raw)
		default:
			return nil, fmt.Errorf("signing key must be an ed25519 seed or private key, got %d bytes", len(raw))
		}
	}

	return joseutil.New(&joseutil.Config{
		PrivateKey: privateKey,
		KeyID:      "vce-signing-key",
	})
}

func healthCheckHandler(params *startupParameters) http.Handler {
	responseTimes := map[string]healthutil.ResponseTimeState{}

	opts := []health.CheckerOption{
		health.WithTimeout(healthCheckTimeout),
		health.WithInterceptors(healthutil.ResponseTimeInterceptor(responseTimes)),
	}

	if params.databaseType == databaseTypeMongoDBOption {
		opts = append(opts, health.WithCheck(health.Check{
			Name:  "mongodb",
			Check: healthmongo.New(params.mongoDBURL),
		}))
	}

	if len(params.redisURL) > 0 {
		redisOpts := []healthredis.ClientOpt{}
		if params.redisPassword != "" {
			redisOpts = append(redisOpts, healthredis.WithPassword(params.redisPassword))
		}

		opts = append(opts, health.WithCheck(health.Check{
			Name:  "redis",
			Check: healthredis.New(params.redisURL, redisOpts...),
		}))
	}

	return health.NewHandler(health.NewChecker(opts...),
		health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimes)))
}

func setLogLevel(level string) error {
	if level == "" {
		return nil
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	log.SetDefaultLevel(parsed)

	return nil
}
