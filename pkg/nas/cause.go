package nas

// Cause value names from TS 24.501 tables 9.11.3.2.1 and 9.11.4.2.1.

func cause5GMMName(cause byte) string {
	switch cause {
	case 3:
		return "Illegal UE"
	case 5:
		return "PEI not accepted"
	case 6:
		return "Illegal ME"
	case 7:
		return "5GS services not allowed"
	case 9:
		return "UE identity cannot be derived by the network"
	case 10:
		return "Implicitly de-registered"
	case 11:
		return "PLMN not allowed"
	case 12:
		return "Tracking area not allowed"
	case 13:
		return "Roaming not allowed in this tracking area"
	case 15:
		return "No suitable cells in tracking area"
	case 20:
		return "MAC failure"
	case 21:
		return "Synch failure"
	case 22:
		return "Congestion"
	case 23:
		return "UE security capabilities mismatch"
	case 24:
		return "Security mode rejected, unspecified"
	case 26:
		return "Non-5G authentication unacceptable"
	case 27:
		return "N1 mode not allowed"
	case 28:
		return "Restricted service area"
	case 31:
		return "Redirection to EPC required"
	case 43:
		return "LADN not available"
	case 62:
		return "No network slices available"
	case 65:
		return "Maximum number of PDU sessions reached"
	case 67:
		return "Insufficient resources for specific slice and DNN"
	case 69:
		return "Insufficient resources for specific slice"
	case 71:
		return "ngKSI already in use"
	case 72:
		return "Non-3GPP access to 5GCN not allowed"
	case 73:
		return "Serving network not authorized"
	case 74:
		return "Temporarily not authorized for this SNPN"
	case 75:
		return "Permanently not authorized for this SNPN"
	case 76:
		return "Not authorized for this CAG or authorized for CAG cells only"
	case 90:
		return "Payload was not forwarded"
	case 91:
		return "DNN not supported or not subscribed in the slice"
	case 92:
		return "Insufficient user-plane resources for the PDU session"
	case 95:
		return "Semantically incorrect message"
	case 96:
		return "Invalid mandatory information"
	case 97:
		return "Message type non-existent or not implemented"
	case 98:
		return "Message type not compatible with the protocol state"
	case 99:
		return "Information element non-existent or not implemented"
	case 100:
		return "Conditional IE error"
	case 101:
		return "Message not compatible with the protocol state"
	case 111:
		return "Protocol error, unspecified"
	default:
		return "Unknown cause"
	}
}

func cause5GSMName(cause byte) string {
	switch cause {
	case 8:
		return "Operator determined barring"
	case 26:
		return "Insufficient resources"
	case 27:
		return "Missing or unknown DNN"
	case 28:
		return "Unknown PDU session type"
	case 29:
		return "User authentication or authorization failed"
	case 31:
		return "Request rejected, unspecified"
	case 32:
		return "Service option not supported"
	case 33:
		return "Requested service option not subscribed"
	case 35:
		return "PTI already in use"
	case 36:
		return "Regular deactivation"
	case 38:
		return "Network failure"
	case 39:
		return "Reactivation requested"
	case 41:
		return "Semantic error in the TFT operation"
	case 42:
		return "Syntactical error in the TFT operation"
	case 43:
		return "Invalid PDU session identity"
	case 44:
		return "Semantic errors in packet filter(s)"
	case 45:
		return "Syntactical error in packet filter(s)"
	case 46:
		return "Out of LADN service area"
	case 47:
		return "PTI mismatch"
	case 50:
		return "PDU session type IPv4 only allowed"
	case 51:
		return "PDU session type IPv6 only allowed"
	case 54:
		return "PDU session does not exist"
	case 57:
		return "PDU session type IPv4v6 only allowed"
	case 58:
		return "PDU session type Unstructured only allowed"
	case 59:
		return "Unsupported 5QI value"
	case 61:
		return "PDU session type Ethernet only allowed"
	case 67:
		return "Insufficient resources for specific slice and DNN"
	case 68:
		return "Not supported SSC mode"
	case 69:
		return "Insufficient resources for specific slice"
	case 70:
		return "Missing or unknown DNN in a slice"
	case 81:
		return "Invalid PTI value"
	case 82:
		return "Maximum data rate per UE for user-plane integrity protection is too low"
	case 83:
		return "Semantic error in the QoS operation"
	case 84:
		return "Syntactical error in the QoS operation"
	case 85:
		return "Invalid mapped EPS bearer identity"
	case 95:
		return "Semantically incorrect message"
	case 96:
		return "Invalid mandatory information"
	case 97:
		return "Message type non-existent or not implemented"
	case 98:
		return "Message type not compatible with the protocol state"
	case 99:
		return "Information element non-existent or not implemented"
	case 100:
		return "Conditional IE error"
	case 101:
		return "Message not compatible with the protocol state"
	case 111:
		return "Protocol error, unspecified"
	default:
		return "Unknown cause"
	}
}
