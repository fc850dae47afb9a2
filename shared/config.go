package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
	"time"
)

const (
	configVarName  = "CONFIG"                      // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                     // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "dev/secrets.dev.jsonc" // Path to secrets.json in development environment
)

type Config struct {
	Secrets       Secrets    `json:"-"`
	LogFile       string     `json:"log_file"`
	LogLevel      string     `json:"log_level"`
	ServicePort   uint       `json:"service_port"`
	Host          string     `json:"host"`
	DbFile        string     `json:"db_file"`
	Federation    Federation `json:"federation"`
	InstanceActor *UserInfo  `json:"instance_actor"`
}

// Federation holds the tunables of the protocol engine. The status code list
// drives the permanent-absence classifier for actor fetches and deliveries.
type Federation struct {
	ActorCacheHours      int   `json:"actor_cache_hours"`
	InstanceCacheHours   int   `json:"instance_cache_hours"`
	FetchFailureCeiling  int   `json:"fetch_failure_ceiling"`
	RefreshBatchSize     int   `json:"refresh_batch_size"`
	RequestTimeoutSec    int   `json:"request_timeout_sec"`
	DeliveryMaxAttempts  int   `json:"delivery_max_attempts"`
	PermanentStatusCodes []int `json:"permanent_status_codes"`
}

type UserInfo struct {
	User                    string    `json:"user"`
	Published               time.Time `json:"published"`
	ManuallyApprovesFollows bool      `json:"manually_approves_follows"`
	PubKey                  string    `json:"pub_key"`
	PrivKey                 string    `json:"priv_key"`
}

type Secrets struct {
	PrivKeyPass string   `json:"privkey_passphrase"`
	ApiKeys     []string `json:"api_keys"`
	MetricsAuth string   `json:"metrics_auth"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	applyFederationDefaults(&config.Federation)
	return &config
}

func applyFederationDefaults(fed *Federation) {
	if fed.ActorCacheHours == 0 {
		fed.ActorCacheHours = 24
	}
	if fed.InstanceCacheHours == 0 {
		fed.InstanceCacheHours = 24
	}
	if fed.FetchFailureCeiling == 0 {
		fed.FetchFailureCeiling = 5
	}
	if fed.RefreshBatchSize == 0 {
		fed.RefreshBatchSize = 5
	}
	if fed.RequestTimeoutSec == 0 {
		fed.RequestTimeoutSec = 10
	}
	if fed.DeliveryMaxAttempts == 0 {
		fed.DeliveryMaxAttempts = 10
	}
	if len(fed.PermanentStatusCodes) == 0 {
		fed.PermanentStatusCodes = []int{404, 410}
	}
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
