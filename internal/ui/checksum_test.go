package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumAddrVitalikAddress(t *testing.T) {
	// Known EIP-55 checksum for vitalik's address.
	got, err := ChecksumAddr("0xd8da6bf26964af9d7eed9e03e53415d37aa96045")
	require.NoError(t, err)
	assert.Equal(t, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", got)
}

func TestChecksumAddrUSDC(t *testing.T) {
	got, err := ChecksumAddr("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	require.NoError(t, err)
	assert.Equal(t, "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", got)
}

func TestChecksumAddrAcceptsBareAndUpperPrefix(t *testing.T) {
	want := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"

	got, err := ChecksumAddr("d8da6bf26964af9d7eed9e03e53415d37aa96045")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = ChecksumAddr("0XD8DA6BF26964AF9D7EED9E03E53415D37AA96045")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestChecksumAddrIdempotent(t *testing.T) {
	first, err := ChecksumAddr("0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	require.NoError(t, err)
	second, err := ChecksumAddr(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestChecksumAddrAllDigitsUnchanged(t *testing.T) {
	got, err := ChecksumAddr("0x0000000000000000000000000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, "0x0000000000000000000000000000000000000001", got)
}

func TestChecksumAddrRejectsWrongLength(t *testing.T) {
	_, err := ChecksumAddr("0x1234")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "length")
}

func TestChecksumAddrRejectsNonHex(t *testing.T) {
	_, err := ChecksumAddr("0xzzzzbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hex")
}
