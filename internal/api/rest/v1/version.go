package v1

// BasePath is the route prefix existing clients call
const BasePath = "/sec"
