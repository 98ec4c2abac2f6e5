package config

import "fmt"

// ValidateTLSConfig validates the TLS configuration
func (c *Config) ValidateTLSConfig() error {
	tls := c.Server.TLS

	switch tls.Mode {
	case "disabled":
		return nil
	case "server":
		if err := validateServerCertificates(tls); err != nil {
			return err
		}
	case "mutual":
		if err := validateServerCertificates(tls); err != nil {
			return err
		}
		if err := validateClientCA(tls); err != nil {
			return err
		}
		if err := validateClientAuthPolicy(tls); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid TLS mode: %s (must be 'disabled', 'server', or 'mutual')", tls.Mode)
	}

	return validateTLSVersion(tls)
}

// validateServerCertificates checks that the server certificate and key are
// configured from exactly one source each (file path or inline content)
func validateServerCertificates(tls TLSConfig) error {
	if tls.CertFile == "" && tls.CertContent == "" {
		return fmt.Errorf("TLS certificate is required (provide certFile or certContent)")
	}
	if tls.KeyFile == "" && tls.KeyContent == "" {
		return fmt.Errorf("TLS private key is required (provide keyFile or keyContent)")
	}
	if tls.CertFile != "" && tls.CertContent != "" {
		return fmt.Errorf("cannot specify both certFile and certContent - choose one")
	}
	if tls.KeyFile != "" && tls.KeyContent != "" {
		return fmt.Errorf("cannot specify both keyFile and keyContent - choose one")
	}
	return nil
}

// validateClientCA checks the CA certificate needed for client verification
func validateClientCA(tls TLSConfig) error {
	if tls.CAFile == "" && tls.CAContent == "" {
		return fmt.Errorf("CA certificate is required for mutual TLS mode (provide caFile or caContent)")
	}
	if tls.CAFile != "" && tls.CAContent != "" {
		return fmt.Errorf("cannot specify both caFile and caContent - choose one")
	}
	return nil
}

// validateClientAuthPolicy validates the client authentication policy
func validateClientAuthPolicy(tls TLSConfig) error {
	switch tls.ClientAuthPolicy {
	case "require", "request", "verify", "":
		return nil // empty defaults to require
	default:
		return fmt.Errorf("invalid clientAuthPolicy: %s (must be 'require', 'request', or 'verify')", tls.ClientAuthPolicy)
	}
}

// validateTLSVersion validates the minimum TLS version
func validateTLSVersion(tls TLSConfig) error {
	switch tls.MinVersion {
	case "", "1.2", "1.3":
		return nil // empty defaults to 1.2
	default:
		return fmt.Errorf("invalid TLS minVersion: %s (must be '1.2' or '1.3')", tls.MinVersion)
	}
}
