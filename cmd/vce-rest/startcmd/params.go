/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cmdutils "github.com/credentio/vce/internal/pkg/utils/cmd"
)

const (
	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "Host to run the vce-rest instance on. Format: HostName:Port."
	hostURLEnvKey        = "VCE_REST_HOST_URL"

	hostURLExternalFlagName  = "host-url-external"
	hostURLExternalEnvKey    = "VCE_REST_HOST_URL_EXTERNAL"
	hostURLExternalFlagUsage = "The URL of the host server as seen externally." +
		" If not provided, then the host url will be used here." +
		" Alternatively, this can be set with the following environment variable: " + hostURLExternalEnvKey

	apiKeyFlagName  = "api-key"
	apiKeyEnvKey    = "VCE_REST_API_KEY" //nolint:gosec
	apiKeyFlagUsage = "API key protecting the management endpoints." +
		" Alternatively, this can be set with the following environment variable: " + apiKeyEnvKey

	modeFlagName      = "mode"
	modeFlagShorthand = "m"
	modeEnvKey        = "VCE_REST_MODE"
	modeFlagUsage     = "Mode in which the vce-rest service will run. Possible values: " +
		"['issuer', 'verifier', 'combined'] (default: combined)." +
		" Alternatively, this can be set with the following environment variable: " + modeEnvKey

	databaseTypeFlagName      = "database-type"
	databaseTypeFlagShorthand = "t"
	databaseTypeEnvKey        = "VCE_REST_DATABASE_TYPE"
	databaseTypeFlagUsage     = "The type of database to use internally. Supported options: mem, mongodb " +
		"(default: mem)." +
		" Alternatively, this can be set with the following environment variable: " + databaseTypeEnvKey

	databaseTypeMemOption     = "mem"
	databaseTypeMongoDBOption = "mongodb"

	mongoDBURLFlagName  = "mongodb-url"
	mongoDBURLEnvKey    = "VCE_REST_MONGODB_URL"
	mongoDBURLFlagUsage = "MongoDB connection string. Required when database-type is mongodb." +
		" Alternatively, this can be set with the following environment variable: " + mongoDBURLEnvKey

	redisURLFlagName  = "redis-url"
	redisURLEnvKey    = "VCE_REST_REDIS_URL"
	redisURLFlagUsage = "Comma-separated list of redis addresses. When set, access tokens and nonces" +
		" are kept in redis instead of the primary database." +
		" Alternatively, this can be set with the following environment variable: " + redisURLEnvKey

	redisPasswordFlagName  = "redis-password"
	redisPasswordEnvKey    = "VCE_REST_REDIS_PASSWORD" //nolint:gosec
	redisPasswordFlagUsage = "Password for the redis connection." +
		" Alternatively, this can be set with the following environment variable: " + redisPasswordEnvKey

	s3BucketFlagName  = "status-list-s3-bucket"
	s3BucketEnvKey    = "VCE_REST_STATUS_LIST_S3_BUCKET"
	s3BucketFlagUsage = "S3 bucket the signed status list document is published to. When unset, the" +
		" document is served from the primary database." +
		" Alternatively, this can be set with the following environment variable: " + s3BucketEnvKey

	s3RegionFlagName  = "status-list-s3-region"
	s3RegionEnvKey    = "VCE_REST_STATUS_LIST_S3_REGION"
	s3RegionFlagUsage = "Region of the status list S3 bucket." +
		" Alternatively, this can be set with the following environment variable: " + s3RegionEnvKey

	issuerIDFlagName  = "issuer-id"
	issuerIDEnvKey    = "VCE_REST_ISSUER_ID"
	issuerIDFlagUsage = "Identifier this deployment issues credentials under." +
		" Alternatively, this can be set with the following environment variable: " + issuerIDEnvKey

	verifierIDFlagName  = "verifier-id"
	verifierIDEnvKey    = "VCE_REST_VERIFIER_ID"
	verifierIDFlagUsage = "Identifier this deployment verifies presentations under. It is the audience" +
		" wallets must bind their presentation tokens to." +
		" Alternatively, this can be set with the following environment variable: " + verifierIDEnvKey

	signingKeyFlagName  = "signing-key"
	signingKeyEnvKey    = "VCE_REST_SIGNING_KEY" //nolint:gosec
	signingKeyFlagUsage = "Base64-encoded ed25519 seed or private key used to sign credentials," +
		" request objects and status lists. An ephemeral key is generated when unset." +
		" Alternatively, this can be set with the following environment variable: " + signingKeyEnvKey

	statusListIDFlagName  = "status-list-id"
	statusListIDEnvKey    = "VCE_REST_STATUS_LIST_ID"
	statusListIDFlagUsage = "Path segment the status list is published under (default: 1)." +
		" Alternatively, this can be set with the following environment variable: " + statusListIDEnvKey

	statusListSizeFlagName  = "status-list-size"
	statusListSizeEnvKey    = "VCE_REST_STATUS_LIST_SIZE"
	statusListSizeFlagUsage = "Number of entries in the status list. Immutable once the list exists." +
		" Alternatively, this can be set with the following environment variable: " + statusListSizeEnvKey

	logLevelFlagName  = "log-level"
	logLevelEnvKey    = "VCE_REST_LOG_LEVEL"
	logLevelFlagUsage = "Logging level. Supported options: critical, error, warning, info, debug (default: info)." +
		" Alternatively, this can be set with the following environment variable: " + logLevelEnvKey

	prometheusHostFlagName  = "prom-http-url"
	prometheusHostEnvKey    = "VCE_REST_PROM_HTTP_URL"
	prometheusHostFlagUsage = "Host to serve the prometheus metrics endpoint on. Metrics are disabled" +
		" when unset. Format: HostName:Port." +
		" Alternatively, this can be set with the following environment variable: " + prometheusHostEnvKey

	tracingTypeFlagName  = "tracing-type"
	tracingTypeEnvKey    = "VCE_REST_TRACING_TYPE"
	tracingTypeFlagUsage = "Span exporter type. Supported options: JAEGER, STDOUT. Tracing is disabled" +
		" when unset." +
		" Alternatively, this can be set with the following environment variable: " + tracingTypeEnvKey

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolEnvKey    = "VCE_REST_TLS_SYSTEMCERTPOOL"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool. Possible values [true] [false]." +
		" Defaults to false if not set." +
		" Alternatively, this can be set with the following environment variable: " + tlsSystemCertPoolEnvKey

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsEnvKey    = "VCE_REST_TLS_CACERTS"
	tlsCACertsFlagUsage = "Comma-separated list of CA cert paths." +
		" Alternatively, this can be set with the following environment variable: " + tlsCACertsEnvKey
)

// mode in which to run the vce-rest service.
type mode string

const (
	verifierMode mode = "verifier"
	issuerMode   mode = "issuer"
	combinedMode mode = "combined"
)

type startupParameters struct {
	hostURL           string
	hostURLExternal   string
	apiKey            string
	mode              string
	databaseType      string
	mongoDBURL        string
	redisURL          []string
	redisPassword     string
	s3Bucket          string
	s3Region          string
	issuerID          string
	verifierID        string
	signingKey        string
	statusListID      string
	statusListSize    int
	logLevel          string
	prometheusHost    string
	tracingType       string
	tlsSystemCertPool bool
	tlsCACerts        []string
}

//nolint:funlen
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	apiKey, err := cmdutils.GetUserSetVarFromString(cmd, apiKeyFlagName, apiKeyEnvKey, false)
	if err != nil {
		return nil, err
	}

	serviceMode := cmdutils.GetUserSetOptionalVarFromString(cmd, modeFlagName, modeEnvKey)
	if serviceMode == "" {
		serviceMode = string(combinedMode)
	}

	if !supportedMode(serviceMode) {
		return nil, fmt.Errorf("unsupported mode: %s", serviceMode)
	}

	databaseType := cmdutils.GetUserSetOptionalVarFromString(cmd, databaseTypeFlagName, databaseTypeEnvKey)
	if databaseType == "" {
		databaseType = databaseTypeMemOption
	}

	mongoDBURL := cmdutils.GetUserSetOptionalVarFromString(cmd, mongoDBURLFlagName, mongoDBURLEnvKey)

	switch databaseType {
	case databaseTypeMemOption:
	case databaseTypeMongoDBOption:
		if mongoDBURL == "" {
			return nil, fmt.Errorf("%s is required when %s is %s", mongoDBURLFlagName,
				databaseTypeFlagName, databaseTypeMongoDBOption)
		}
	default:
		return nil, fmt.Errorf("unsupported database type: %s", databaseType)
	}

	statusListSize := 0

	if v := cmdutils.GetUserSetOptionalVarFromString(cmd, statusListSizeFlagName, statusListSizeEnvKey); v != "" {
		statusListSize, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", statusListSizeFlagName, err)
		}
	}

	statusListID := cmdutils.GetUserSetOptionalVarFromString(cmd, statusListIDFlagName, statusListIDEnvKey)
	if statusListID == "" {
		statusListID = "1"
	}

	s3Bucket := cmdutils.GetUserSetOptionalVarFromString(cmd, s3BucketFlagName, s3BucketEnvKey)
	s3Region := cmdutils.GetUserSetOptionalVarFromString(cmd, s3RegionFlagName, s3RegionEnvKey)

	if s3Bucket != "" && s3Region == "" {
		return nil, fmt.Errorf("%s is required when %s is set", s3RegionFlagName, s3BucketFlagName)
	}

	tlsSystemCertPool, tlsCACerts, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:           hostURL,
		hostURLExternal:   cmdutils.GetUserSetOptionalVarFromString(cmd, hostURLExternalFlagName, hostURLExternalEnvKey),
		apiKey:            apiKey,
		mode:              serviceMode,
		databaseType:      databaseType,
		mongoDBURL:        mongoDBURL,
		redisURL:          cmdutils.GetUserSetOptionalVarFromArrayString(cmd, redisURLFlagName, redisURLEnvKey),
		redisPassword:     cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey),
		s3Bucket:          s3Bucket,
		s3Region:          s3Region,
		issuerID:          cmdutils.GetUserSetOptionalVarFromString(cmd, issuerIDFlagName, issuerIDEnvKey),
		verifierID:        cmdutils.GetUserSetOptionalVarFromString(cmd, verifierIDFlagName, verifierIDEnvKey),
		signingKey:        cmdutils.GetUserSetOptionalVarFromString(cmd, signingKeyFlagName, signingKeyEnvKey),
		statusListID:      statusListID,
		statusListSize:    statusListSize,
		logLevel:          cmdutils.GetUserSetOptionalVarFromString(cmd, logLevelFlagName, logLevelEnvKey),
		prometheusHost:    cmdutils.GetUserSetOptionalVarFromString(cmd, prometheusHostFlagName, prometheusHostEnvKey),
		tracingType:       cmdutils.GetUserSetOptionalVarFromString(cmd, tracingTypeFlagName, tracingTypeEnvKey),
		tlsSystemCertPool: tlsSystemCertPool,
		tlsCACerts:        tlsCACerts,
	}, nil
}

func getTLS(cmd *cobra.Command) (bool, []string, error) {
	tlsSystemCertPoolString := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsSystemCertPoolFlagName,
		tlsSystemCertPoolEnvKey)

	tlsSystemCertPool := false

	if tlsSystemCertPoolString != "" {
		var err error

		tlsSystemCertPool, err = strconv.ParseBool(tlsSystemCertPoolString)
		if err != nil {
			return false, nil, err
		}
	}

	tlsCACerts := cmdutils.GetUserSetOptionalVarFromArrayString(cmd, tlsCACertsFlagName, tlsCACertsEnvKey)

	return tlsSystemCertPool, tlsCACerts, nil
}

func supportedMode(serviceMode string) bool {
	switch mode(serviceMode) {
	case issuerMode, verifierMode, combinedMode:
		return true
	default:
		return false
	}
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(hostURLExternalFlagName, "", "", hostURLExternalFlagUsage)
	startCmd.Flags().StringP(apiKeyFlagName, "", "", apiKeyFlagUsage)
	startCmd.Flags().StringP(modeFlagName, modeFlagShorthand, "", modeFlagUsage)
	startCmd.Flags().StringP(databaseTypeFlagName, databaseTypeFlagShorthand, "", databaseTypeFlagUsage)
	startCmd.Flags().StringP(mongoDBURLFlagName, "", "", mongoDBURLFlagUsage)
	startCmd.Flags().StringArrayP(redisURLFlagName, "", []string{}, redisURLFlagUsage)
	startCmd.Flags().StringP(redisPasswordFlagName, "", "", redisPasswordFlagUsage)
	startCmd.Flags().StringP(s3BucketFlagName, "", "", s3BucketFlagUsage)
	startCmd.Flags().StringP(s3RegionFlagName, "", "", s3RegionFlagUsage)
	startCmd.Flags().StringP(issuerIDFlagName, "", "", issuerIDFlagUsage)
	startCmd.Flags().StringP(verifierIDFlagName, "", "", verifierIDFlagUsage)
	startCmd.Flags().StringP(signingKeyFlagName, "", "", signingKeyFlagUsage)
	startCmd.Flags().StringP(statusListIDFlagName, "", "", statusListIDFlagUsage)
	startCmd.Flags().StringP(statusListSizeFlagName, "", "", statusListSizeFlagUsage)
	startCmd.Flags().StringP(logLevelFlagName, "", "", logLevelFlagUsage)
	startCmd.Flags().StringP(prometheusHostFlagName, "", "", prometheusHostFlagUsage)
	startCmd.Flags().StringP(tracingTypeFlagName, "", "", tracingTypeFlagUsage)
	startCmd.Flags().StringP(tlsSystemCertPoolFlagName, "", "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringArrayP(tlsCACertsFlagName, "", []string{}, tlsCACertsFlagUsage)
}
