package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const otpTTL = 10 * time.Minute

// GenerateNumericOTP generates a secure random numeric code of the given
// length. Guests type these on phones, so digits only.
func GenerateNumericOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// StoreOTP caches the verification code for the user with a 10-minute TTL.
func StoreOTP(userID, otp string) error {
	ctx := context.Background()
	key := fmt.Sprintf("otp:%s", userID)
	if err := GetOTPCacheClient().Set(ctx, key, otp, otpTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return fmt.Errorf("failed to store verification code: %w", err)
	}
	return nil
}

// VerifyOTPRecord compares the provided code to the cached one and deletes it
// on success. Returns false when the code is missing, expired, or wrong.
func VerifyOTPRecord(userID, providedOTP string) (bool, error) {
	ctx := context.Background()
	key := fmt.Sprintf("otp:%s", userID)

	stored, err := GetOTPCacheClient().Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to retrieve verification code: %w", err)
	}
	if stored != providedOTP {
		return false, nil
	}

	if err := GetOTPCacheClient().Del(ctx, key).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return true, nil
}
