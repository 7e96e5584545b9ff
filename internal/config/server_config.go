package config

import (
	"math/big"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"
	"github/chapool/nft-faucet/internal/util"
)

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableTrailingSlashMiddleware  bool
	EnablePrometheusMiddleware     bool
	ReadTimeout                    time.Duration
	WriteTimeout                   time.Duration
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestHeader   bool
	LogRequestQuery    bool
	LogResponseHeader  bool
	PrettyPrintConsole bool
}

type Chain struct {
	RPCURLs        []string
	RequestTimeout time.Duration
	NativeSymbol   string
	NetworkName    string
	// consecutive read failures after which the circuit breaker opens
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

// FeeMode selects which fee-estimation capability the target network is known to expose.
type FeeMode string

const (
	FeeModeAuto    FeeMode = "auto"
	FeeModeLegacy  FeeMode = "legacy"
	FeeModeDefault FeeMode = "default"
)

type Faucet struct {
	AmountPerRequest      *big.Int
	DailyLimit            *big.Int
	Cooldown              time.Duration
	QuotaWindow           time.Duration
	RequiredAssetContract string
	FeeMode               FeeMode
	DefaultGasPrice       *big.Int
	// zero disables the guard
	MaxGasPrice          *big.Int
	GasLimit             uint64
	PendingRetryAfter    time.Duration
	BalanceCheckInterval time.Duration
	LowBalanceThreshold  *big.Int
}

type Signer struct {
	PrivateKey       string `json:"-"`
	Mnemonic         string `json:"-"`
	DerivationPath   string
	KeystoreFile     string
	KeystorePassword string `json:"-"`
}

type RateLimit struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
	ExpiresIn         time.Duration
}

type Server struct {
	Echo      EchoServer
	Logger    LoggerServer
	Chain     Chain
	Faucet    Faucet
	Signer    Signer
	RateLimit RateLimit
}

const (
	defaultRPCURL                = "https://testnet-rpc.monad.xyz"
	defaultRequiredAssetContract = "0xFc983B762D564dD6388983BB45D2E59C46805DB2"
	defaultAmountPerRequest      = "0.01"
	defaultDailyLimit            = "0.01"
	defaultCooldown              = 24 * time.Hour
	defaultGasPriceGwei          = "1"
	defaultTransferGasLimit      = 21000
	defaultDerivationPath        = "m/44'/60'/0'/0/0"
)

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env` file next to the binary (or SERVER_DOTENV_PATH) is loaded
	// first; variables already set in the environment take precedence.
	dotenvPath := util.GetEnv("SERVER_DOTENV_PATH", ".env")
	if err := gotenv.Load(dotenvPath); err != nil {
		log.Debug().Str("path", dotenvPath).Msg("No .env file loaded")
	}

	cooldown := util.GetEnvAsDuration("SERVER_FAUCET_COOLDOWN", defaultCooldown)

	return Server{
		Echo: EchoServer{
			Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":5000"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			EnableCORSMiddleware:           util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableTrailingSlashMiddleware:  util.GetEnvAsBool("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true),
			EnablePrometheusMiddleware:     util.GetEnvAsBool("SERVER_ECHO_ENABLE_PROMETHEUS_MIDDLEWARE", true),
			ReadTimeout:                    util.GetEnvAsDuration("SERVER_ECHO_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:                   util.GetEnvAsDuration("SERVER_ECHO_WRITE_TIMEOUT", 60*time.Second),
		},
		Logger: LoggerServer{
			Level:              logLevelFromEnv("SERVER_LOGGER_LEVEL", zerolog.DebugLevel),
			RequestLevel:       logLevelFromEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel),
			LogRequestHeader:   util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_HEADER", false),
			LogRequestQuery:    util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_QUERY", false),
			LogResponseHeader:  util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_HEADER", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Chain: Chain{
			RPCURLs:            util.GetEnvAsStringArr("SERVER_CHAIN_RPC_URLS", []string{defaultRPCURL}),
			RequestTimeout:     util.GetEnvAsDuration("SERVER_CHAIN_REQUEST_TIMEOUT", 10*time.Second),
			NativeSymbol:       util.GetEnv("SERVER_CHAIN_NATIVE_SYMBOL", "MON"),
			NetworkName:        util.GetEnv("SERVER_CHAIN_NETWORK_NAME", "monad-testnet"),
			BreakerMaxFailures: uint32(util.GetEnvAsUint64("SERVER_CHAIN_BREAKER_MAX_FAILURES", 5)), //nolint:gosec
			BreakerOpenTimeout: util.GetEnvAsDuration("SERVER_CHAIN_BREAKER_OPEN_TIMEOUT", 30*time.Second),
		},
		Faucet: Faucet{
			AmountPerRequest:      etherFromEnv("SERVER_FAUCET_AMOUNT_PER_REQUEST", defaultAmountPerRequest),
			DailyLimit:            etherFromEnv("SERVER_FAUCET_DAILY_LIMIT", defaultDailyLimit),
			Cooldown:              cooldown,
			QuotaWindow:           util.GetEnvAsDuration("SERVER_FAUCET_QUOTA_WINDOW", cooldown),
			RequiredAssetContract: util.GetEnv("SERVER_FAUCET_REQUIRED_ASSET_CONTRACT", defaultRequiredAssetContract),
			FeeMode: FeeMode(util.GetEnvEnum("SERVER_FAUCET_FEE_MODE", string(FeeModeAuto),
				[]string{string(FeeModeAuto), string(FeeModeLegacy), string(FeeModeDefault)})),
			DefaultGasPrice:      gweiFromEnv("SERVER_FAUCET_DEFAULT_GAS_PRICE_GWEI", defaultGasPriceGwei),
			MaxGasPrice:          gweiFromEnv("SERVER_FAUCET_MAX_GAS_PRICE_GWEI", "0"),
			GasLimit:             util.GetEnvAsUint64("SERVER_FAUCET_GAS_LIMIT", defaultTransferGasLimit),
			PendingRetryAfter:    util.GetEnvAsDuration("SERVER_FAUCET_PENDING_RETRY_AFTER", 10*time.Second),
			BalanceCheckInterval: util.GetEnvAsDuration("SERVER_FAUCET_BALANCE_CHECK_INTERVAL", time.Minute),
			LowBalanceThreshold:  etherFromEnv("SERVER_FAUCET_LOW_BALANCE_THRESHOLD", "1"),
		},
		Signer: Signer{
			PrivateKey:       util.GetEnv("SERVER_SIGNER_PRIVATE_KEY", ""),
			Mnemonic:         util.GetEnv("SERVER_SIGNER_MNEMONIC", ""),
			DerivationPath:   util.GetEnv("SERVER_SIGNER_DERIVATION_PATH", defaultDerivationPath),
			KeystoreFile:     util.GetEnv("SERVER_SIGNER_KEYSTORE_FILE", ""),
			KeystorePassword: util.GetEnv("SERVER_SIGNER_KEYSTORE_PASSWORD", ""),
		},
		RateLimit: RateLimit{
			Enabled:           util.GetEnvAsBool("SERVER_RATE_LIMIT_ENABLED", true),
			RequestsPerSecond: util.GetEnvAsFloat64("SERVER_RATE_LIMIT_REQUESTS_PER_SECOND", 0.2),
			Burst:             util.GetEnvAsInt("SERVER_RATE_LIMIT_BURST", 5),
			ExpiresIn:         util.GetEnvAsDuration("SERVER_RATE_LIMIT_EXPIRES_IN", 10*time.Minute),
		},
	}
}

func logLevelFromEnv(key string, defaultVal zerolog.Level) zerolog.Level {
	level, err := zerolog.ParseLevel(util.GetEnv(key, defaultVal.String()))
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Invalid log level, falling back to default")
		return defaultVal
	}

	return level
}

func etherFromEnv(key string, defaultVal string) *big.Int {
	return unitsFromEnv(key, defaultVal, util.EtherDecimals)
}

func gweiFromEnv(key string, defaultVal string) *big.Int {
	return unitsFromEnv(key, defaultVal, util.GweiDecimals)
}

func unitsFromEnv(key string, defaultVal string, decimals int32) *big.Int {
	val, err := util.ParseUnits(util.GetEnv(key, defaultVal), decimals)
	if err != nil {
		log.Panic().Err(err).Str("key", key).Msg("Failed to parse amount from env")
	}

	return val
}
