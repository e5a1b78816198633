package config

type ConfigurationError string

func (err ConfigurationError) Error() string {
	return "invalid configuration (" + string(err) + ")"
}
