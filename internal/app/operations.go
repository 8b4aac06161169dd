package app

// Operation names used as metric labels
const (
	OpHashRegister      = "hash_register"
	OpHashValidate      = "hash_validate"
	OpAESEncrypt        = "aes_encrypt"
	OpAESDecrypt        = "aes_decrypt"
	OpRSAEncrypt        = "rsa_encrypt"
	OpRSADecrypt        = "rsa_decrypt"
	OpECIESEncrypt      = "ecies_encrypt"
	OpECIESDecrypt      = "ecies_decrypt"
	OpSign              = "sign"
	OpSignatureValidate = "sign_validate"
)
