package resolver

import (
	"github.com/aws/aws-lambda-go/lambda/messages"
	"google.golang.org/grpc/status"
)

// toLambdaError maps a status error onto the runtime's error payload so the
// platform sees the status code name as errorType. The runtime only keeps a
// custom errorType for a value of messages.InvokeResponse_Error.
func toLambdaError(err error) error {
	if err == nil {
		return nil
	}

	st, _ := status.FromError(err)
	return messages.InvokeResponse_Error{
		Type:    st.Code().String(),
		Message: st.Message(),
	}
}
