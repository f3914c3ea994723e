package main

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/crypto/argon2"

	"github.com/phcformat/phc/pkg/b64"
	"github.com/phcformat/phc/pkg/phc"
)

// HashCLI derives an argon2id hash and prints it as a PHC string, with
// every field validated as a parameter value before it is emitted.
type HashCLI struct {
	Password string `arg:"" help:"Password to hash."`

	Memory  uint32 `help:"Memory cost in KiB." short:"m" default:"65536"`
	Time    uint32 `help:"Time cost in passes." short:"t" default:"3"`
	Threads uint8  `help:"Degree of parallelism." short:"p" default:"2"`
	SaltLen int    `help:"Salt length in bytes." default:"16"`
	KeyLen  uint32 `help:"Hash length in bytes." default:"32"`
}

func (c *HashCLI) Run(logger *slog.Logger) error {
	salt := make([]byte, c.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("unable to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(c.Password), salt, c.Time, c.Memory, c.Threads, c.KeyLen)

	logger.Info("derived argon2id hash",
		"m", c.Memory, "t", c.Time, "p", c.Threads, "keylen", c.KeyLen)

	s, err := formatHash(c.Memory, c.Time, uint32(c.Threads), salt, key)
	if err != nil {
		return err
	}

	fmt.Println(s)
	return nil
}

// formatHash assembles the PHC string for an argon2id hash. Each
// parameter and B64 field goes through value validation, so oversized
// salts or keys are rejected rather than emitted malformed.
func formatHash(memory, time, threads uint32, salt, key []byte) (string, error) {
	m, err := decimalValue(memory)
	if err != nil {
		return "", fmt.Errorf("memory cost: %w", err)
	}
	t, err := decimalValue(time)
	if err != nil {
		return "", fmt.Errorf("time cost: %w", err)
	}
	p, err := decimalValue(threads)
	if err != nil {
		return "", fmt.Errorf("parallelism: %w", err)
	}

	saltValue, err := phc.New(b64.EncodeToString(salt))
	if err != nil {
		return "", fmt.Errorf("salt does not fit a parameter value: %w", err)
	}
	hashValue, err := phc.New(b64.EncodeToString(key))
	if err != nil {
		return "", fmt.Errorf("hash does not fit a parameter value: %w", err)
	}

	return fmt.Sprintf("$argon2id$v=%d$m=%s,t=%s,p=%s$%s$%s",
		argon2.Version, m, t, p, saltValue, hashValue), nil
}

// decimalValue renders n in the format's decimal encoding and validates
// the round trip.
func decimalValue(n uint32) (phc.Value, error) {
	v, err := phc.New(strconv.FormatUint(uint64(n), 10))
	if err != nil {
		return phc.Value{}, err
	}
	if got, err := v.Decimal(); err != nil || got != n {
		return phc.Value{}, fmt.Errorf("%d did not round-trip as a decimal value", n)
	}
	return v, nil
}
