// Package stealth is the stealth-address cryptographic core for the PIVY
// privacy-payment system on Aptos. It lets a payer, given only a
// receiver's long-lived meta public keys, derive a fresh, unlinkable
// Aptos address controlled solely by that receiver, and lets the receiver
// reconstruct the private key needed to spend funds sent there.
//
// The package is a pure, stateless library: every exported function is
// reentrant, performs no I/O, and retains no private key material past its
// own return. It composes four leaf packages:
//
//   - keycodec: normalizes key material arriving as hex, base58, raw
//     bytes, or a {type:"Buffer",data:[...]} object into canonical
//     fixed-size byte arrays.
//   - aptosaddr: maps a compressed secp256k1 public key to a 32-byte Aptos
//     account address.
//   - ecies: ECDH shared-secret derivation and the nonce-prefixed XOR
//     cipher used to protect ephemeral keys and notes in transit.
//   - metakeys: generates meta-spend/meta-view and ephemeral secp256k1
//     keypairs.
//
// stealth.go implements the fifth component, stealth derivation;
// stealth.go and errors.go re-export the pieces of the other four that
// form this package's public surface.
package stealth
