package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8080"`
	GrpcHealthPort       int           `env:"GRPC_HEALTH_PORT,default=8081"`
	LogLevel             string        `env:"LOG_LEVEL,required=true"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	JWTSecret            string        `env:"JWT_SECRET,required=true"`
	CommandBufferSize    int           `env:"COMMAND_BUFFER_SIZE,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	ChatHistoryLimit     int           `env:"CHAT_HISTORY_LIMIT,default=50"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,required=true"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,required=true"`
	StoreTimeout         time.Duration `env:"STORE_TIMEOUT,required=true"`
	PingInterval         time.Duration `env:"PING_INTERVAL,default=54s"`
	WriteWait            time.Duration `env:"WRITE_WAIT,default=10s"`
	MaxFrameSize         int64         `env:"MAX_FRAME_SIZE,default=8192"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	MaxMessageLength     int           `env:"MAX_MESSAGE_LENGTH,default=1000"`
	ConnectRateLimit     int           `env:"CONNECT_RATE_LIMIT,default=30"`
	CORSOrigins          string        `env:"CORS_ORIGINS,default=http://localhost:3000"`
}

// Origins splits CORS_ORIGINS on commas, blanks removed.
func (c Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
