// Package digest encapsula el hash de contraseñas como colaborador
// sustituible. El algoritmo por defecto es el digest SHA-256 sin sal que usaba
// el sistema anterior, para que los hashes ya almacenados sigan siendo válidos.
//
// Ese digest NO es un primitivo de almacenamiento de credenciales: en un
// despliegue de producción debe configurarse HASH_ALGO=bcrypt (lento y con sal)
// y migrarse los hashes existentes.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Digester produce un digest unidireccional de una contraseña.
type Digester interface {
	Hash(plain string) (string, error)
}

// Algoritmos soportados en configuración (HASH_ALGO).
const (
	AlgoSHA256 = "sha256"
	AlgoBcrypt = "bcrypt"
)

// New devuelve el Digester para el algoritmo configurado.
func New(algo string) (Digester, error) {
	switch algo {
	case AlgoSHA256, "":
		return SHA256Digester{}, nil
	case AlgoBcrypt:
		return BcryptDigester{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("algoritmo de hash no soportado: %q", algo)
	}
}

// SHA256Digester digest hexadecimal de una sola ronda, determinista.
// Compatible con los hashes heredados.
type SHA256Digester struct{}

// Hash implementa Digester.
func (SHA256Digester) Hash(plain string) (string, error) {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:]), nil
}

// BcryptDigester digest bcrypt con sal, para despliegues de producción.
type BcryptDigester struct {
	Cost int
}

// Hash implementa Digester.
func (d BcryptDigester) Hash(plain string) (string, error) {
	cost := d.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(out), nil
}
