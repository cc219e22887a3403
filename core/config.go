package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Directory storage engines.
const (
	StorageEngineLocal    = "localstore"
	StorageEnginePostgres = "postgres"
)

type (
	Config struct {
		Env      string // DEV (default), TEST, QA, PROD
		Debug    bool
		TestMode bool
		Build    string
		WorkDir  string

		AppName         string
		SecretKey       string
		DemoPassword    string
		FrontendBaseURL string

		DefaultFromEmail mail.Address
		ContactEmail     mail.Address
		SendgridApiKey   string
		RollbarToken     string

		Server      serverConfig
		Storage     storageConfig
		Eligibility EligibilityConfig
	}

	serverConfig struct {
		Host               string
		Addr               string
		DebugAddr          string
		JWTExpirationDelta time.Duration
		ShutdownTimeout    time.Duration
	}

	storageConfig struct {
		// Engine selects the Directory repository: "localstore" (JSON
		// files under DataDir, the default) or "postgres".
		Engine  string
		DataDir string

		Host       string
		Port       string
		User       string
		Password   string
		Name       string
		DisableTLS bool
	}

	// EligibilityConfig holds the scoring thresholds applied by the
	// eligibility checker. Kept here rather than as inline literals so
	// deployments and tests can exercise exact boundary values.
	EligibilityConfig struct {
		AgeMin        int
		AgeMax        int
		MinGPA4       float64
		IncomeCeiling int
	}
)

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("build", "dev")
	conf.SetDefault("appName", "UYZN Scholarship Foundation")
	conf.SetDefault("secretKey", "q2n$wp7e)ans-dz&u0xh9(h!x)#*c5(#yg8h^$cfpm3egu")
	conf.SetDefault("demoPassword", "demo123")
	conf.SetDefault("frontendBaseURL", "http://localhost:5173")
	conf.SetDefault("defaultFromEmail", "noreply@uyznfoundation.org")
	conf.SetDefault("contactEmail", "hello@uyznfoundation.org")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("serverDebugAddr", ":8001")
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("shutdownTimeout", 5*time.Second)
	conf.SetDefault("storageEngine", StorageEngineLocal)
	conf.SetDefault("dataDir", "")
	conf.SetDefault("dbHost", "localhost")
	conf.SetDefault("dbPort", "5432")
	conf.SetDefault("dbUser", "postgres")
	conf.SetDefault("dbPassword", "postgres")
	conf.SetDefault("dbName", "uyzn")
	conf.SetDefault("dbDisableTLS", true)
	conf.SetDefault("eligAgeMin", 16)
	conf.SetDefault("eligAgeMax", 35)
	conf.SetDefault("eligMinGPA", 2.8)
	conf.SetDefault("eligIncomeCeilingGHS", 72000)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	dataDir := conf.GetString("dataDir")
	if dataDir == "" {
		dataDir = filepath.Join(wd, "data")
	}

	return &Config{
		Env:              env,
		Debug:            conf.GetBool("debug"),
		TestMode:         env == "TEST",
		Build:            conf.GetString("build"),
		WorkDir:          wd,
		AppName:          conf.GetString("appName"),
		SecretKey:        conf.GetString("secretKey"),
		DemoPassword:     conf.GetString("demoPassword"),
		FrontendBaseURL:  conf.GetString("frontendBaseURL"),
		DefaultFromEmail: mail.Address{Name: conf.GetString("appName"), Address: conf.GetString("defaultFromEmail")},
		ContactEmail:     mail.Address{Name: conf.GetString("appName"), Address: conf.GetString("contactEmail")},
		SendgridApiKey:   conf.GetString("sendgridApiKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
		Server: serverConfig{
			Host:               conf.GetString("serverHost"),
			Addr:               conf.GetString("serverAddr"),
			DebugAddr:          conf.GetString("serverDebugAddr"),
			JWTExpirationDelta: conf.GetDuration("jwtExpirationDelta"),
			ShutdownTimeout:    conf.GetDuration("shutdownTimeout"),
		},
		Storage: storageConfig{
			Engine:     conf.GetString("storageEngine"),
			DataDir:    dataDir,
			Host:       conf.GetString("dbHost"),
			Port:       conf.GetString("dbPort"),
			User:       conf.GetString("dbUser"),
			Password:   conf.GetString("dbPassword"),
			Name:       conf.GetString("dbName"),
			DisableTLS: conf.GetBool("dbDisableTLS"),
		},
		Eligibility: EligibilityConfig{
			AgeMin:        conf.GetInt("eligAgeMin"),
			AgeMax:        conf.GetInt("eligAgeMax"),
			MinGPA4:       conf.GetFloat64("eligMinGPA"),
			IncomeCeiling: conf.GetInt("eligIncomeCeilingGHS"),
		},
	}
}
