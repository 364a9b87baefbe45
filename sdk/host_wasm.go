//go:build wasm

package sdk

import (
	"encoding/json"
	"strconv"
)

//go:wasmimport sdk console.log
func log(s *string) *string

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk hive.get_balance
func getBalance(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.draw
func hiveDraw(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.transfer
func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport sdk contracts.read
func contractRead(contractId *string, key *string) *string

//go:wasmimport sdk contracts.enqueue
func contractEnqueue(contractId *string, method *string, payload *string, options *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

func hostLog(s string) {
	log(&s)
}

func hostAbort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
}

func hostRevert(msg string, symbol string) {
	revert(&msg, &symbol)
}

func hostStateSet(key string, value string) {
	stateSetObject(&key, &value)
}

func hostStateGet(key string) *string {
	return stateGetObject(&key)
}

func hostStateDelete(key string) {
	stateDeleteObject(&key)
}

func hostEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	requiredAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			requiredAuths = append(requiredAuths, Address(auth.(string)))
		}
	}
	requiredPostingAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range auths {
			requiredPostingAuths = append(requiredPostingAuths, Address(auth.(string)))
		}
	}

	if sender, ok := envMap["msg.sender"].(string); ok {
		env.Sender = Sender{
			Address:              Address(sender),
			RequiredAuths:        requiredAuths,
			RequiredPostingAuths: requiredPostingAuths,
		}
	}
	return env
}

func hostEnvKey(key string) *string {
	return getEnvKey(&key)
}

func hostBalance(address Address, asset Asset) int64 {
	addr := address.String()
	as := asset.String()
	balStr := *getBalance(&addr, &as)
	bal, err := strconv.ParseInt(balStr, 10, 64)
	if err != nil {
		panic(err)
	}
	return bal
}

func hostDraw(amount int64, asset Asset) {
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveDraw(&amt, &as)
}

func hostTransfer(to Address, amount int64, asset Asset) {
	toaddr := to.String()
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveTransfer(&toaddr, &amt, &as)
}

func hostEnqueue(contractId string, method string, payload string, options *CallOptions) {
	optStr := ""
	if options != nil {
		optByte, err := json.Marshal(options)
		if err != nil {
			Revert("could not serialize call options", "sdk_error")
		}
		optStr = string(optByte)
	}
	contractEnqueue(&contractId, &method, &payload, &optStr)
}

func hostContractRead(contractId string, key string) *string {
	return contractRead(&contractId, &key)
}
