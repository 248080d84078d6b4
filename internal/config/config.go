package config

import "os"

type Config struct {
	Port string

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLPort     string
	MySQLDatabase string

	RedisHost string

	AMQPURL              string
	NotificationExchange string

	PaystackBaseURL   string
	PaystackSecretKey string

	JWTSecret string
}

func FromEnv() Config {
	c := Config{
		Port:                 "8080",
		MySQLPort:            "3306",
		NotificationExchange: "notification.exchange",
		PaystackBaseURL:      "https://api.paystack.co",
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	c.MySQLUser = os.Getenv("MYSQL_USER")
	c.MySQLPassword = os.Getenv("MYSQL_PASSWORD")
	c.MySQLHost = os.Getenv("MYSQL_HOST")
	if v := os.Getenv("MYSQL_PORT"); v != "" {
		c.MySQLPort = v
	}
	c.MySQLDatabase = os.Getenv("MYSQL_DATABASE")
	c.RedisHost = os.Getenv("REDIS_HOST")
	c.AMQPURL = os.Getenv("RABBITMQ_URL")
	if v := os.Getenv("NOTIFICATION_EXCHANGE"); v != "" {
		c.NotificationExchange = v
	}
	if v := os.Getenv("PAYSTACK_BASE_URL"); v != "" {
		c.PaystackBaseURL = v
	}
	c.PaystackSecretKey = os.Getenv("PAYSTACK_SECRET_KEY")
	c.JWTSecret = os.Getenv("JWT_SECRET")
	return c
}
