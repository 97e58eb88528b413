package cfn

// Intrinsic function helpers. Each returns the JSON map form CloudFormation
// expects, so values can be placed directly into resource properties,
// mappings and outputs.

// Ref returns a {"Ref": name} intrinsic referencing a parameter or resource
// by logical name.
func Ref(name string) map[string]any {
	return map[string]any{"Ref": name}
}

// GetAtt returns a {"Fn::GetAtt": [logicalName, attribute]} intrinsic.
func GetAtt(logicalName, attribute string) map[string]any {
	return map[string]any{"Fn::GetAtt": []any{logicalName, attribute}}
}

// Sub returns a {"Fn::Sub": expr} intrinsic.
func Sub(expr string) map[string]any {
	return map[string]any{"Fn::Sub": expr}
}

// FindInMap returns a {"Fn::FindInMap": [mapName, topKey, secondKey]}
// intrinsic resolving a value from a template mapping.
func FindInMap(mapName, topKey, secondKey string) map[string]any {
	return map[string]any{"Fn::FindInMap": []any{mapName, topKey, secondKey}}
}

// ImportValue returns a {"Fn::ImportValue": name} intrinsic resolving a
// cross-stack export.
func ImportValue(name string) map[string]any {
	return map[string]any{"Fn::ImportValue": name}
}

// Pseudo parameter references.
var (
	// Region references the AWS::Region pseudo parameter.
	Region = Ref("AWS::Region")

	// AccountID references the AWS::AccountId pseudo parameter.
	AccountID = Ref("AWS::AccountId")

	// StackName references the AWS::StackName pseudo parameter.
	StackName = Ref("AWS::StackName")
)
