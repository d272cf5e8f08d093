package constants

const apiName = "hello-api-go"

// APIName returns the bracketed service name used as a log prefix
func APIName() string {
	return "[" + apiName + "]"
}

// HelloMessage is the fixed greeting returned by the hello endpoint
const HelloMessage = "Hello World~"

// ElementValue is the literal the core service stores in its element model
const ElementValue = "element is a"
