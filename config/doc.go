// Package config loads idpctl and provider configuration.
//
// It uses Viper to read a YAML config file, godotenv to load a .env file,
// and binds environment variables over both, so MONOCLOUD_CLIENT_ID
// overrides monocloud.client_id from the file.
//
// # Usage
//
//	var cfg config.Config
//	if err := config.LoadConfig("idpctl", &cfg, config.WithEnvPrefixes("MONOCLOUD", "LOGGING")); err != nil {
//	    return err
//	}
//	cfg.ApplyDefaults()
//	opts, err := config.ProviderOptions[monocloud.Profile](cfg.MonoCloud)
package config
